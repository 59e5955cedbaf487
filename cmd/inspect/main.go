package main

import (
	"chat-relay/domain"
	"chat-relay/repositories"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// inspect dumps the chat messages and call signals stored for one room.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	room := flag.String("room", "", "Room to dump")
	limit := flag.Int("limit", 50, "Maximum rows per table")
	flag.Parse()

	if *room == "" {
		color.Red.Println("-room is required")
		os.Exit(2)
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	silent := slog.New(slog.NewTextHandler(io.Discard, nil))
	roomID := domain.RoomID(*room)

	messages, _, err := repositories.NewMessageRepository(db, silent, limit).GetMessages(roomID, nil)
	if err != nil {
		log.Fatal(err)
	}
	color.Cyan.Printf("Messages in room %s (%d)\n", roomID, len(messages))
	table := newTable([]string{"Time", "Sender", "Model", "Lang", "Content"})
	for _, m := range messages {
		table.Append([]string{
			m.CreatedAt.Format("15:04:05"),
			m.SenderID,
			string(m.SenderModel),
			m.Language,
			m.Content,
		})
	}
	table.Render()

	signals, err := repositories.NewCallSignalRepository(db, silent, 0).ListCallSignals(roomID, *limit)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	color.Cyan.Printf("Call signals in room %s (%d)\n", roomID, len(signals))
	table = newTable([]string{"Time", "Sender", "Type", "Payload"})
	for _, s := range signals {
		table.Append([]string{
			s.CreatedAt.Format("15:04:05"),
			s.SenderID,
			color.Yellow.Sprint(s.Type),
			string(s.Payload),
		})
	}
	table.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		return nil, fmt.Errorf("database needs a repair, start the relay once first: %w", err)
	}
	return db, err
}
