package spectate

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/gorilla/websocket"
)

// Watch conecta em url e chama fn a cada frame até ctx acabar ou o servidor fechar.
// Fechamento limpo devolve nil.
func Watch(ctx context.Context, url string, fn func(Frame)) error {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("error to connect to %s: %w", url, err)
	}
	defer ws.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			ws.Close()
		case <-stop:
		}
	}()

	for {
		msgType, msgData, err := ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("reading from %s: %w", url, err)
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		var frame Frame
		if err := gob.NewDecoder(bytes.NewReader(msgData)).Decode(&frame); err != nil {
			return fmt.Errorf("decoding frame: %w", err)
		}
		fn(frame)
	}
}
