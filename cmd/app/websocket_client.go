package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
)

type snapshot struct {
	Collection  string            `json:"collection"`
	Items       []json.RawMessage `json:"items"`
	GeneratedAt time.Time         `json:"generated_at"`
}

func main() {
	server := flag.String("server", "localhost:10000", "API host and port")
	collection := flag.String("collection", "rooms", "Collection to follow: rooms, tenants or payments")
	queryToken := flag.Bool("query-token", false, "Send the token as access_token instead of a header")
	raw := flag.Bool("raw", false, "Print whole snapshots instead of a summary")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Usage: go run ./cmd/app [-collection rooms] <JWT_TOKEN>")
	}
	token := flag.Arg(0)

	query := url.Values{"collection": {*collection}}
	header := http.Header{}
	if *queryToken {
		query.Set("access_token", token)
	} else {
		header.Set("Authorization", "Bearer "+token)
	}
	u := url.URL{Scheme: "ws", Host: *server, Path: "/api/v1/stream", RawQuery: query.Encode()}

	fmt.Printf("Connecting to %s...\n", u.Redacted())
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	fmt.Printf("Connected! Waiting for %s snapshots...\n", *collection)
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			if *raw {
				fmt.Printf("%s\n", string(message))
				continue
			}

			var s snapshot
			if err := json.Unmarshal(message, &s); err != nil {
				log.Println("Malformed snapshot:", err)
				continue
			}
			fmt.Printf("[%s] %s: %d items\n", s.GeneratedAt.Local().Format(time.TimeOnly), s.Collection, len(s.Items))
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		// Send close message
		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		// Wait for the connection to close
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
