package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shrinkit_go/internal/model"
	"shrinkit_go/internal/repo"
	"shrinkit_go/pkg/huffman"
	"shrinkit_go/pkg/logger"
)

var ErrEmptyName = errors.New("archive name is required")

type ArchiveService struct {
	repo   repo.ArchiveRepo
	logger logger.Logger
	now    func() time.Time
}

func NewArchiveService(r repo.ArchiveRepo, l logger.Logger) *ArchiveService {
	return &ArchiveService{repo: r, logger: l, now: time.Now}
}

/*** ---------- 무상태 압축/해제 ---------- ***/

// Compress returns the container bytes for content.
func (s *ArchiveService) Compress(content []byte, foldCase bool) ([]byte, *huffman.EncodedData, error) {
	data, err := huffman.Compress(content, huffman.WithCaseFold(foldCase))
	if err != nil {
		return nil, nil, err
	}
	raw, err := data.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	s.logger.Debugf("compressed %d bytes into %d (%d symbols, %d message bits)",
		len(content), len(raw), len(data.TreeLeaves), len(data.MessageBits))
	return raw, data, nil
}

// Decompress parses a container and returns the original content.
func (s *ArchiveService) Decompress(raw []byte) ([]byte, error) {
	var data huffman.EncodedData
	if err := data.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	out, err := huffman.Decompress(&data)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("decompressed %d bytes into %d", len(raw), len(out))
	return out, nil
}

/*** ---------- 저장소 연동 ---------- ***/

func (s *ArchiveService) Create(ctx context.Context, name string, content []byte, foldCase bool) (*model.Archive, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	raw, data, err := s.Compress(content, foldCase)
	if err != nil {
		return nil, err
	}
	a := &model.Archive{
		ID:             uuid.NewString(),
		Name:           name,
		OriginalSize:   len(content),
		CompressedSize: len(raw),
		Symbols:        len(data.TreeLeaves),
		FoldCase:       foldCase,
		CreatedAt:      s.now().UTC(),
		Data:           raw,
	}
	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.Errorf("archive save failed: %s: %v", name, err)
		return nil, err
	}
	s.logger.Infof("archive created: %s (%s) %d -> %d bytes", a.ID, a.Name, a.OriginalSize, a.CompressedSize)
	return a, nil
}

func (s *ArchiveService) GetByID(ctx context.Context, id string) (*model.Archive, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArchiveService) List(ctx context.Context) ([]*model.Archive, error) {
	return s.repo.List(ctx)
}

func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infof("archive deleted: %s", id)
	return nil
}

// Content decompresses a stored archive.
func (s *ArchiveService) Content(ctx context.Context, id string) (*model.Archive, []byte, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	out, err := s.Decompress(a.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("archive %s: %w", id, err)
	}
	return a, out, nil
}
