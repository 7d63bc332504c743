package internal

import (
	"context"
	"log/slog"
)

// ContentSource supplies the help content for a request.
type ContentSource interface {
	Get(ctx context.Context) (Content, error)
}

type staticContentSource struct {
	content Content
}

// NewStaticContentSource returns a source that always serves content.
func NewStaticContentSource(content Content) ContentSource {
	return &staticContentSource{content: content}
}

func (s *staticContentSource) Get(ctx context.Context) (Content, error) {
	return s.content, nil
}

// fileContentSource re-reads the content file on every call so copy edits
// show up without a restart.
type fileContentSource struct {
	path string
}

// NewFileContentSource returns a source that loads path on each Get.
func NewFileContentSource(path string) ContentSource {
	return &fileContentSource{path: path}
}

func (s *fileContentSource) Get(ctx context.Context) (Content, error) {
	content, err := LoadContent(s.path)
	if err != nil {
		slog.Error("failed to reload help content", "path", s.path, "error", err)
		return Content{}, err
	}
	return content, nil
}

// NewContentSource picks the content source for config: in dev mode the
// content file is reloaded per request, otherwise it is loaded once here.
func NewContentSource(config *ServerConfig) (ContentSource, error) {
	if config.DevMode {
		slog.Info("running in dev mode, reloading help content on each request", "contentFile", config.ContentFile)
		source := NewFileContentSource(config.ContentFile)
		if _, err := source.Get(context.Background()); err != nil {
			return nil, err
		}
		return source, nil
	}
	content, err := LoadContent(config.ContentFile)
	if err != nil {
		return nil, err
	}
	return NewStaticContentSource(content), nil
}
