package http

import (
	"context"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/logger"
	"github.com/akgarhwal/vault/models"
)

// MirrorStore keeps the uploaded documents.
type MirrorStore interface {
	Stat(name string) (adapter.MirrorInfo, error)
	Read(name string) ([]byte, adapter.MirrorInfo, error)
	Write(ctx context.Context, name string, data []byte) (bool, error)
}

// DocumentParser validates an uploaded export document.
type DocumentParser func(data []byte) (models.ExportDocument, error)

type Handler struct {
	mirrors MirrorStore
	parse   DocumentParser

	user     string
	password string
	maxBody  int64

	info   models.AppBuildInfo
	logger *logger.Logger
}

// Options carries the endpoint settings.
type Options struct {
	User        string
	Password    string
	MaxBodySize int64
	Info        models.AppBuildInfo
}

func NewHandler(mirrors MirrorStore, parse DocumentParser, opts Options, logger *logger.Logger) (*Handler, error) {
	if opts.User == "" || opts.Password == "" {
		return nil, ErrNoCredentials
	}
	logger.Info().Msg("mirror handler created")
	return &Handler{
		mirrors:  mirrors,
		parse:    parse,
		user:     opts.User,
		password: opts.Password,
		maxBody:  opts.MaxBodySize,
		info:     opts.Info,
		logger:   logger,
	}, nil
}
