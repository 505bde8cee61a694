package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"archiveapi/internal/service"
)

// PreviewLocation returns the storage address a record would be filed under.
// An empty unit_id or an unmapped unit gives the blank address with status 200.
//
// @Summary Preview a storage location
// @Tags locations
// @Produce json
// @Param unit_id query int false "Unit ID"
// @Param file_number query int false "File number"
// @Param edit_id query string false "ID of the record being edited"
// @Success 200 {object} model.StorageAddress
// @Failure 404 {object} errorPayload
// @Router /locations/preview [get]
func PreviewLocation(archives service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		unitID, err := optionalInt(c.Query("unit_id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_UNIT_ID", "invalid unit id")
		}
		fileNumber, err := optionalInt(c.Query("file_number"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_NUMBER", "invalid file number")
		}
		editID := c.Query("edit_id")
		if editID != "" {
			if _, err := uuid.Parse(editID); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
			}
		}

		addr, err := archives.PreviewLocation(c.UserContext(), unitID, int(fileNumber), editID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(addr)
	}
}

// optionalInt parses an optional query value; empty means zero.
func optionalInt(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseInt(s, 10, 64)
}
