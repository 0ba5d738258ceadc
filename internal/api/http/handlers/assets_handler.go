package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/assets"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// AssetsHandler exposes the bulk asset import endpoint.
type AssetsHandler struct{}

// NewAssetsHandler constructs handler.
func NewAssetsHandler() *AssetsHandler {
	return &AssetsHandler{}
}

// Import handles POST /admin/assets/import. The uploaded delimited file is
// parsed and returned as flat asset records; nothing is persisted, the
// caller decides what to do with the result.
func (h *AssetsHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file upload required", nil)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unable to read upload", nil)
	}
	defer file.Close()

	parsed, err := assets.Import(file)
	if err != nil {
		return apperrors.NewValidationError(err.Error(), map[string]any{"file": fileHeader.Filename})
	}

	items := make([]dto.AssetResponse, 0, len(parsed))
	for _, asset := range parsed {
		items = append(items, dto.AssetFromDomain(asset))
	}
	return c.JSON(fiber.Map{"data": items, "count": len(items)})
}
