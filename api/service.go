package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/VxidDev/eduDuck/db/sqlc"
	"github.com/VxidDev/eduDuck/quiz"
	"github.com/VxidDev/eduDuck/tmpstore"
	"github.com/VxidDev/eduDuck/token"
	"github.com/VxidDev/eduDuck/util"
	"github.com/gin-gonic/gin"
)

var (
	// api errors
	ErrInvalidParams      = errors.New("invalid params")
	ErrInvalidQuizID      = errors.New("invalid quiz id")
	ErrInvalidResultID    = errors.New("invalid result id")
	ErrInvalidQuiz        = errors.New("invalid quiz")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrQuizNotFound       = errors.New("quiz not found or expired")
	ErrResultNotFound     = errors.New("result not found")
	ErrNoQuestionsFound   = errors.New("no valid questions found in the text")
	ErrNoDaysFound        = errors.New("no days found in the text")
)

type Service struct {
	config     util.Config
	store      db.Store
	tokenMaker token.Maker
	server     *http.Server
	router     *gin.Engine
	quizStore  tmpstore.Store
	parser     quiz.Parser
}

// Returns new service instance with provided config and stores.
func NewService(
	config util.Config,
	store db.Store,
	tokenMaker token.Maker,
	qs tmpstore.Store,
) (*Service, error) {
	policy := quiz.CorrectFallback
	if config.QuizStrictMarkers {
		policy = quiz.CorrectReject
	}

	parser, err := quiz.NewParser(policy)
	if err != nil {
		return nil, err
	}

	// fail on start rather than on every parse request
	if _, err := quiz.NewWarnings(config.MaxWarnings); err != nil {
		return nil, fmt.Errorf("invalid MAX_WARNINGS: %w", err)
	}

	service := &Service{
		config:     config,
		store:      store,
		tokenMaker: tokenMaker,
		quizStore:  qs,
		parser:     parser,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time spent writing the response
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
