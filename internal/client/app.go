package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/latenitesite/mattermost-mobile/internal/config"
	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/internal/service"
	"github.com/latenitesite/mattermost-mobile/models"
)

const (
	// TableReactions and TablePosts select the composite handlers.
	TableReactions = "Reactions"
	TablePosts     = "Posts"

	stdinInput = "-"
)

type App struct {
	operator service.DataOperator
	cfg      config.Import
	logger   *logger.Logger

	in  io.Reader
	out io.Writer
}

// Summary is printed after every run.
type Summary struct {
	Table     string `json:"table"`
	Committed bool   `json:"committed"`
	Created   int    `json:"created"`
	Updated   int    `json:"updated"`
}

func NewApp(services *service.ClientServices, cfg config.Import, log *logger.Logger) (*App, error) {
	if services == nil || services.DataOperator == nil {
		return nil, ErrNoDataOperator
	}

	return &App{
		operator: services.DataOperator,
		cfg:      cfg,
		logger:   log,
		in:       os.Stdin,
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	declared, ok := models.ParseOperationType(a.cfg.Operation)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOperation, a.cfg.Operation)
	}

	values, err := a.readPayloads()
	if err != nil {
		return err
	}

	a.logger.Info().
		Str("func", "App.Run").
		Str("table", a.cfg.Table).
		Int("values", len(values)).
		Bool("prepare_only", a.cfg.PrepareOnly).
		Msg("importing payloads")

	descriptors, err := a.dispatch(ctx, declared, values)
	if err != nil {
		return fmt.Errorf("import %s: %w", a.cfg.Table, err)
	}

	summary := Summary{Table: a.cfg.Table, Committed: !a.cfg.PrepareOnly}
	for _, d := range descriptors {
		switch d.Operation {
		case models.OperationCreate:
			summary.Created++
		case models.OperationUpdate:
			summary.Updated++
		}
	}

	return json.NewEncoder(a.out).Encode(summary)
}

func (a *App) dispatch(ctx context.Context, declared models.OperationType, values []models.Payload) ([]models.Descriptor, error) {
	switch a.cfg.Table {
	case TableReactions:
		return a.operator.HandleReactions(ctx, service.ReactionsArgs{
			Reactions:       values,
			PrepareRowsOnly: a.cfg.PrepareOnly,
		})
	case TablePosts:
		// an imported file is treated as one contiguous page
		order := make([]string, 0, len(values))
		for _, v := range values {
			if id, ok := v.String("id"); ok {
				order = append(order, id)
			}
		}
		return a.operator.HandlePosts(ctx, service.PostsArgs{
			Posts:           values,
			Order:           order,
			PrepareRowsOnly: a.cfg.PrepareOnly,
		})
	default:
		return a.operator.HandleEntity(ctx, models.TableName(a.cfg.Table), service.HandleArgs{
			Values:          values,
			OperationType:   declared,
			PrepareRowsOnly: a.cfg.PrepareOnly,
		})
	}
}

func (a *App) readPayloads() ([]models.Payload, error) {
	var (
		data []byte
		err  error
	)
	if a.cfg.Input == stdinInput {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(a.cfg.Input)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingInput, err)
	}

	var values []models.Payload
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingInput, err)
	}
	return values, nil
}
