package gameapi

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/beka-birhanu/pickle-maze/game"
	"github.com/beka-birhanu/pickle-maze/maze"
	"github.com/beka-birhanu/pickle-maze/service"
	"github.com/beka-birhanu/pickle-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const defaultTokenTTL = time.Hour

// GameController serves maze games.
type GameController struct {
	sessions  i.GameSessionManager
	tokenizer i.Tokenizer
	tokenTTL  time.Duration
	logger    i.Logger
	upgrader  websocket.Upgrader
}

// NewGameController initializes a GameController. A non-positive ttl selects one hour.
func NewGameController(gsm i.GameSessionManager, t i.Tokenizer, ttl time.Duration, logger i.Logger) (*GameController, error) {
	if gsm == nil || t == nil || logger == nil {
		return nil, errors.New("game controller needs a session manager, a tokenizer and a logger")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &GameController{
		sessions:  gsm,
		tokenizer: t,
		tokenTTL:  ttl,
		logger:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}, nil
}

// RegisterPublic registers public routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/games", gc.newGame)
}

// RegisterProtected registers routes that need the game's token.
func (gc *GameController) RegisterProtected(route *gin.RouterGroup) {
	games := route.Group("/games/:ID")
	{
		games.GET("", gc.state)
		games.DELETE("", gc.remove)
		games.POST("/moves", gc.move)
		games.POST("/restart", gc.restart)
		games.GET("/ws", gc.play)
	}
}

// newGame generates a maze and returns the game id with its token.
func (gc *GameController) newGame(ctx *gin.Context) {
	var request NewGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty, please select it again"})
		return
	}

	id, state, err := gc.sessions.NewSession(request.Size)
	if err != nil {
		writeError(ctx, err)
		return
	}

	token, err := gc.tokenizer.Generate(id, gc.tokenTTL)
	if err != nil {
		gc.logger.Error("signing game token: " + err.Error())
		_ = gc.sessions.Remove(id)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not create game"})
		return
	}

	ctx.JSON(http.StatusCreated, &NewGameResponse{
		ID:    id.String(),
		Token: token,
		State: stateResponse(state),
	})
}

// state returns the current game state.
func (gc *GameController) state(ctx *gin.Context) {
	id, ok := gameID(ctx)
	if !ok {
		return
	}

	state, err := gc.sessions.State(id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stateResponse(state))
}

// move applies one move.
func (gc *GameController) move(ctx *gin.Context) {
	id, ok := gameID(ctx)
	if !ok {
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := gc.applyMove(id, request.Direction)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// restart replaces the game's maze.
func (gc *GameController) restart(ctx *gin.Context) {
	id, ok := gameID(ctx)
	if !ok {
		return
	}

	var request NewGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid difficulty, please select it again"})
		return
	}

	state, err := gc.sessions.Restart(id, request.Size)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stateResponse(state))
}

// remove ends the game.
func (gc *GameController) remove(ctx *gin.Context) {
	id, ok := gameID(ctx)
	if !ok {
		return
	}

	if err := gc.sessions.Remove(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (gc *GameController) applyMove(id uuid.UUID, direction string) (*MoveResponse, error) {
	d, err := game.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	res, state, err := gc.sessions.Move(id, d)
	if err != nil {
		return nil, err
	}

	resp := moveResponse(res, state)
	return &resp, nil
}

// gameID parses the path id and checks it against the token's game.
// It writes the error response itself and reports whether to continue.
func gameID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return uuid.Nil, false
	}

	granted, ok := ctx.Get(ContextGameID)
	if !ok || granted.(uuid.UUID) != id {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this game"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps domain errors to HTTP responses.
func writeError(ctx *gin.Context, err error) {
	status, message := errorStatus(err)
	ctx.JSON(status, gin.H{"error": message})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, maze.ErrInvalidSize), errors.Is(err, service.ErrSizeTooLarge):
		return http.StatusBadRequest, "invalid difficulty, please select it again"
	case errors.Is(err, game.ErrUnknownDirection):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, maze.ErrExhausted):
		return http.StatusServiceUnavailable, "maze generation failed, please try again"
	default:
		return http.StatusInternalServerError, "unexpected error"
	}
}
