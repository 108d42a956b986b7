// Package container provides dependency injection for the pdf-transcript application.
// It centralizes the creation and wiring of the logger, the configuration and
// the extraction engines, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/pdf-transcript/internal/config"
	"fjacquet/pdf-transcript/internal/extractor"
	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/textutils"
	"fjacquet/pdf-transcript/internal/transcriber"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; fields are private and only reachable
// through getter methods.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	engines map[extractor.EngineType]extractor.Engine
}

// Option customizes a Container before the default dependencies are built.
type Option func(*Container)

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithEngine registers engine under et, replacing the default engine of that type.
func WithEngine(et extractor.EngineType, engine extractor.Engine) Option {
	return func(c *Container) {
		c.engines[et] = engine
	}
}

// NewContainer creates and wires all application dependencies.
//
// Engines are only constructed here; whether an external tool is installed is
// checked when the engine is used, so a missing pdftotext does not prevent
// the native engine from running.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{
		config:  cfg,
		engines: make(map[extractor.EngineType]extractor.Engine),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	if _, ok := c.engines[extractor.Native]; !ok {
		c.engines[extractor.Native] = extractor.NewNativeEngine(c.logger)
	}
	if _, ok := c.engines[extractor.PDFToText]; !ok {
		c.engines[extractor.PDFToText] = extractor.NewPDFToTextEngine(cfg.PDFToText.Binary, cfg.PDFToText.Layout, c.logger)
	}

	c.logger.Debug("Container initialized",
		logging.Field{Key: "engines_count", Value: len(c.engines)},
		logging.Field{Key: logging.FieldEngine, Value: cfg.Extract.Engine},
		logging.Field{Key: logging.FieldConfigFile, Value: cfg.FileUsed})

	return c, nil
}

// GetEngine returns the engine registered for et.
func (c *Container) GetEngine(et extractor.EngineType) (extractor.Engine, error) {
	e, ok := c.engines[et]
	if !ok {
		return nil, fmt.Errorf("unknown engine type: %s", et)
	}
	return e, nil
}

// GetEngines returns a copy of the engine registry.
func (c *Container) GetEngines() map[extractor.EngineType]extractor.Engine {
	result := make(map[extractor.EngineType]extractor.Engine, len(c.engines))
	for k, v := range c.engines {
		result[k] = v
	}
	return result
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// NewTranscriber returns a transcriber for the engine registered under et,
// applying the configured normalization form.
func (c *Container) NewTranscriber(et extractor.EngineType) (*transcriber.Transcriber, error) {
	engine, err := c.GetEngine(et)
	if err != nil {
		return nil, err
	}

	form, err := textutils.ParseForm(c.config.Extract.Normalize)
	if err != nil {
		return nil, err
	}

	return transcriber.New(engine, c.logger, transcriber.WithNormalization(form)), nil
}
