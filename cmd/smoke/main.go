// Command smoke drives the full webview protocol against a running server:
// auth, hub lookup, game creation, a guess and a reveal. Useful as an
// end-to-end check after deploying.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

type event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func main() {
	base := os.Getenv("SMOKE_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	token := authenticate(base, "smoke_creator")

	// create a game over the protocol from the hub context
	conn := dial(base, token, "")
	defer conn.Close()

	waitFor(conn, "ready")

	send(conn, "createGamePost", map[string]any{
		"target": map[string]any{"kind": "circle", "color": "red", "x": 100, "y": 100},
	})
	created := waitFor(conn, "gameCreated")

	var createdPayload struct {
		ID      string `json:"id"`
		ShortID string `json:"shortId"`
	}
	if err := json.Unmarshal(created.Payload, &createdPayload); err != nil {
		log.Fatalf("bad gameCreated payload: %v", err)
	}
	fmt.Printf("created game %s (code %s)\n", createdPayload.ID, createdPayload.ShortID)

	// guess as another user on the new post
	guesser := authenticate(base, "smoke_guesser")
	gconn := dial(base, guesser, createdPayload.ID)
	defer gconn.Close()

	waitFor(gconn, "ready")
	send(gconn, "webViewReady", nil)
	waitFor(gconn, "initialData")

	send(gconn, "recordGuess", map[string]any{"x": 105, "y": 102, "secondsTaken": 3})
	resp := waitFor(gconn, "guessResponse")
	fmt.Printf("guess response: %s\n", string(resp.Payload))

	// reveal as the creator
	cconn := dial(base, token, createdPayload.ID)
	defer cconn.Close()

	waitFor(cconn, "ready")
	send(cconn, "revealShape", nil)
	results := waitFor(cconn, "revealResults")
	fmt.Printf("reveal results: %s\n", string(results.Payload))

	fmt.Println("smoke ok")
}

func authenticate(base, username string) string {
	body, _ := json.Marshal(map[string]string{"username": username})
	resp, err := http.Post(base+"/api/v1/auth", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("auth request: %v", err)
	}
	defer resp.Body.Close()

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Token == "" {
		log.Fatalf("auth failed for %s (status %d)", username, resp.StatusCode)
	}
	return out.Token
}

func dial(base, token, post string) *websocket.Conn {
	wsURL := "ws" + base[len("http"):] + "/ws?token=" + token
	if post != "" {
		wsURL += "&post=" + post
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("ws dial: %v", err)
	}
	return conn
}

func send(conn *websocket.Conn, msgType string, payload any) {
	frame := map[string]any{"type": msgType}
	if payload != nil {
		frame["payload"] = payload
	}
	raw, _ := json.Marshal(frame)
	if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		log.Fatalf("write %s: %v", msgType, err)
	}
}

func waitFor(conn *websocket.Conn, msgType string) event {
	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Fatalf("waiting for %s: %v", msgType, err)
		}

		var ev event
		if err := json.Unmarshal(raw, &ev); err != nil {
			continue
		}
		if ev.Type == msgType {
			return ev
		}
		if ev.Type == "error" {
			log.Fatalf("server error while waiting for %s: %s", msgType, string(ev.Payload))
		}
	}
}
