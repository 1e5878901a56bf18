package socket

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/Asabs18/Monopoly/platform/board"
	"github.com/Asabs18/Monopoly/platform/engine"
	"github.com/Asabs18/Monopoly/platform/registry"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// intentEvents maps socket event names to engine intents. Every event
// carries {game_id, seat} plus card_pos for the property-management ones.
var intentEvents = map[string]engine.IntentKind{
	"roll-dice":       engine.IntentRoll,
	"request-buy":     engine.IntentBuy,
	"request-auction": engine.IntentAuction,
	"place-bid":       engine.IntentBid,
	"withdraw-bid":    engine.IntentWithdraw,
	"buy-house":       engine.IntentBuild,
	"sell-house":      engine.IntentSellBuilding,
	"mortgage":        engine.IntentMortgage,
	"unmortgage":      engine.IntentUnmortgage,
	"pay-out-jail":    engine.IntentPayBail,
	"use-jail-card":   engine.IntentUseJailCard,
	"acknowledge":     engine.IntentAcknowledge,
	"end-turn":        engine.IntentEndTurn,
}

// CreateSocketIOServer runs the intent gateway. The display client joins a
// room per game, sends already-disambiguated intents, and receives full
// state snapshots back; it never mutates game state directly.
func CreateSocketIOServer(games *registry.Registry) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}

	properties, err := board.LoadProperties()
	if err != nil {
		panic(err)
	}
	cards, err := board.LoadCards()
	if err != nil {
		panic(err)
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
			s.Emit("error-message", "Malformed request")
			return
		}

		entry, err := games.Get(result["game_id"])
		if err != nil {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}

		entry.Mu.Lock()
		defer entry.Mu.Unlock()
		if entry.Game != nil || len(entry.Seats) >= engine.MaxPlayers {
			s.Emit("error-message", "Game is full or already started")
			s.Emit("failed")
			return
		}
		seat := len(entry.Seats)
		entry.Seats = append(entry.Seats, engine.Seat{
			Name:  result["username"],
			Piece: result["piece"],
		})

		s.Join(entry.Id)
		server.BroadcastToRoom("/", entry.Id, "player-join", result["username"])
		s.Emit("joined-game", strconv.Itoa(seat), uuid.NewV4().String())
		logrus.WithFields(logrus.Fields{"game": entry.Id, "seat": seat}).Info("player joined")
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		s.Leave(result["game_id"])
		server.BroadcastToRoom("/", result["game_id"], "player-left")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameId string) {
		entry, err := games.Get(gameId)
		if err != nil {
			s.Emit("error-message", "Invalid game")
			return
		}

		entry.Mu.Lock()
		defer entry.Mu.Unlock()
		if entry.Game != nil {
			s.Emit("error-message", "Game already started")
			return
		}
		game, err := engine.NewGame(engine.Config{
			Properties: properties,
			Cards:      cards,
		}, entry.Seats)
		if err != nil {
			s.Emit("error-message", "Unable to start game")
			return
		}
		entry.Game = game
		entry.Status = "in progress"
		logrus.WithField("game", entry.Id).Info("game started")

		broadcastState(server, entry)
	})

	for event, kind := range intentEvents {
		kind := kind
		server.OnEvent("/", event, func(s socketio.Conn, jsonStr string) {
			var result map[string]string
			if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
				s.Emit("error-message", "Malformed request")
				return
			}

			entry, err := games.Get(result["game_id"])
			if err != nil {
				s.Emit("error-message", "Invalid game")
				return
			}

			entry.Mu.Lock()
			defer entry.Mu.Unlock()
			if entry.Game == nil {
				s.Emit("error-message", "Game not started")
				return
			}

			seat, _ := strconv.Atoi(result["seat"])
			pos, _ := strconv.Atoi(result["card_pos"])
			err = entry.Game.Step(engine.Intent{Kind: kind, Seat: seat, Position: pos})
			if err != nil {
				s.Emit("error-message", err.Error())
				return
			}

			if kind == engine.IntentRoll {
				snap := entry.Game.Snapshot()
				rollJson, _ := json.Marshal(map[string]interface{}{
					"die1":     snap.Die1,
					"die2":     snap.Die2,
					"delay_ms": entry.Game.RollDelay.Milliseconds(),
				})
				server.BroadcastToRoom("/", entry.Id, "dice-rolled", string(rollJson))
			}
			broadcastState(server, entry)

			if entry.Game.Status == engine.StatusOver {
				entry.Status = "over"
				winner := ""
				if entry.Game.Winner != nil {
					winner = entry.Game.Winner.Name
				}
				server.BroadcastToRoom("/", entry.Id, "game-over", winner)
			}
		})
	}

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)

	port := os.Getenv("SOCKET_PORT")
	if port == "" {
		port = "8000"
	}
	logrus.WithField("port", port).Info("socket gateway listening")
	if err := http.ListenAndServe(":"+port, c.Handler(mux)); err != nil {
		logrus.WithError(err).Fatal("socket gateway stopped")
	}
}

func broadcastState(server *socketio.Server, entry *registry.Entry) {
	snap := entry.Game.Snapshot()
	stateJson, err := json.Marshal(snap)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal snapshot")
		return
	}
	server.BroadcastToRoom("/", entry.Id, "game-state", string(stateJson))
}
