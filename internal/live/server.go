package live

import (
	"fmt"
	"time"

	"github.com/crypt0g30rgy/anony/internal/model"
	tokenService "github.com/crypt0g30rgy/anony/internal/service/token"
	"github.com/gofiber/fiber/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type SocketEvent string

const (
	FeedbackSubmitted SocketEvent = "FeedbackSubmitted"
)

// adminsRoom holds every authenticated dashboard connection.
const adminsRoom = "admins"

type SocketServer struct {
	io         *socket.Server
	httpServer *types.HttpServer
	port       string
}

// NewSocketServer builds the fully wired server so that events can be
// emitted from other goroutines as soon as it exists; Start only listens.
func NewSocketServer(port string) *SocketServer {
	httpServer := types.NewWebServer(nil)

	serverOptions := socket.DefaultServerOptions()
	cors := &types.Cors{
		Origin:         "*",
		Methods:        "GET,POST",
		AllowedHeaders: "Content-Type",
		Credentials:    true,
	}

	serverOptions.SetCors(cors)
	io := socket.NewServer(httpServer, serverOptions)

	io.Use(func(sock *socket.Socket, next func(*socket.ExtendedError)) {
		auth := sock.Handshake().Auth
		if auth == nil {
			next(socket.NewExtendedError("Unauthorized: auth not found", "401"))
			return
		}
		token, err := getParam(auth, "token")
		if err != nil {
			next(socket.NewExtendedError("Unauthorized: token not found", "401"))
			return
		}
		if _, err := tokenService.ValidateAccessToken(token); err != nil {
			next(socket.NewExtendedError("Unauthorized: invalid token", "401"))
			return
		}
		sock.Join(socket.Room(adminsRoom))

		next(nil)
	})

	return &SocketServer{
		io:         io,
		httpServer: httpServer,
		port:       port,
	}
}

func (s *SocketServer) Start() {
	log.Info("Socket.IO server running on port:", s.port)
	s.httpServer.Listen(":"+s.port, nil)
}

func getParam(mapData any, paramName string) (string, error) {
	paramString, ok := mapData.(map[string]interface{})[paramName].(string)
	if !ok {
		return "", fmt.Errorf("param %s not found", paramName)
	}
	return paramString, nil
}

// feedbackEvent is the wire shape of a FeedbackSubmitted broadcast.
// The feedback text stays off the wire; dashboards fetch it over the
// authenticated list endpoint.
type feedbackEvent struct {
	Id          string    `json:"id"`
	Lang        string    `json:"lang"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func newFeedbackEvent(f model.Feedback) feedbackEvent {
	return feedbackEvent{
		Id:          f.Id,
		Lang:        f.Lang,
		SubmittedAt: f.SubmittedAt,
	}
}

// FeedbackSubmitted announces a freshly stored feedback record to every
// connected dashboard.
func (s *SocketServer) FeedbackSubmitted(f model.Feedback) {
	s.emit(FeedbackSubmitted, newFeedbackEvent(f))
}

func (s *SocketServer) emit(event SocketEvent, data any) {
	if s.io == nil {
		return
	}
	err := s.io.In(socket.Room(adminsRoom)).Emit(string(event), data)
	if err != nil {
		log.Error("Error while emitting event:", err)
	}
}
