package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"shrinkit_go/internal/model"
	"shrinkit_go/internal/repo"
	"shrinkit_go/internal/service"
	"shrinkit_go/pkg/bits"
	"shrinkit_go/pkg/huffman"

	"github.com/gin-gonic/gin"
)

const octetStream = "application/octet-stream"

type ArchiveHandler struct {
	svc          *service.ArchiveService
	foldCase     bool
	maxBodyBytes int64
}

func NewArchiveHandler(s *service.ArchiveService, foldCase bool, maxBodyBytes int64) *ArchiveHandler {
	return &ArchiveHandler{svc: s, foldCase: foldCase, maxBodyBytes: maxBodyBytes}
}

type archiveResp struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	OriginalSize   int     `json:"original_size"`
	CompressedSize int     `json:"compressed_size"`
	Symbols        int     `json:"symbols"`
	FoldCase       bool    `json:"fold_case"`
	Ratio          float64 `json:"ratio"`
	CreatedAt      string  `json:"created_at"`
}

func toResp(a *model.Archive) archiveResp {
	return archiveResp{
		ID:             a.ID,
		Name:           a.Name,
		OriginalSize:   a.OriginalSize,
		CompressedSize: a.CompressedSize,
		Symbols:        a.Symbols,
		FoldCase:       a.FoldCase,
		Ratio:          a.Ratio(),
		CreatedAt:      a.CreatedAt.Format(time.RFC3339),
	}
}

func (h *ArchiveHandler) body(c *gin.Context) ([]byte, bool) {
	b, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return b, true
}

func (h *ArchiveHandler) fold(c *gin.Context) bool {
	if v, ok := c.GetQuery("fold"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return h.foldCase
}

// Compress: POST /api/v1/compress
func (h *ArchiveHandler) Compress(c *gin.Context) {
	b, ok := h.body(c)
	if !ok {
		return
	}
	raw, _, err := h.svc.Compress(b, h.fold(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, raw)
}

// Decompress: POST /api/v1/decompress
func (h *ArchiveHandler) Decompress(c *gin.Context) {
	b, ok := h.body(c)
	if !ok {
		return
	}
	out, err := h.svc.Decompress(b)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

// Create: POST /api/v1/archives?name=...
func (h *ArchiveHandler) Create(c *gin.Context) {
	b, ok := h.body(c)
	if !ok {
		return
	}
	a, err := h.svc.Create(c.Request.Context(), c.Query("name"), b, h.fold(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toResp(a))
}

func (h *ArchiveHandler) GetByID(c *gin.Context) {
	a, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResp(a))
}

func (h *ArchiveHandler) Raw(c *gin.Context) {
	a, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", attachment(a.Name+".huf"))
	c.Data(http.StatusOK, octetStream, a.Data)
}

// attachment은 파일명 인용/인코딩을 mime에 맡긴다
func attachment(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}

func (h *ArchiveHandler) Content(c *gin.Context) {
	_, out, err := h.svc.Content(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

func (h *ArchiveHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]archiveResp, 0, len(list))
	for _, a := range list {
		out = append(out, toResp(a))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ArchiveHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// 에러 종류 → HTTP 상태 코드
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repo.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmptyName),
		errors.Is(err, huffman.ErrBadFormat),
		errors.Is(err, huffman.ErrTruncated),
		errors.Is(err, huffman.ErrInvalidSymbolCount),
		errors.Is(err, huffman.ErrMalformedTree),
		errors.Is(err, huffman.ErrTruncatedMessage),
		errors.Is(err, bits.ErrUnexpectedEOF):
		status = http.StatusBadRequest
	case errors.Is(err, huffman.ErrInsufficientSymbols),
		errors.Is(err, huffman.ErrUnknownSymbol):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
