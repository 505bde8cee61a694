package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"archiveapi/internal/service"
)

type inactiveRequest struct {
	Note string `json:"note"`
}

// archiveID validates the :id path parameter.
func archiveID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// ListArchives lists archive records with limit & offset, optionally filtered by unit.
//
// @Summary List archive records
// @Tags archives
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Param unit_id query int false "Unit filter"
// @Success 200 {object} service.ArchiveListResult
// @Router /archives [get]
func ListArchives(archives service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		unitID, err := optionalInt(c.Query("unit_id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_UNIT_ID", "invalid unit id")
		}

		res, err := archives.List(c.UserContext(), unitID, limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// CreateArchive files a new archive record.
//
// @Summary Create an archive record
// @Tags archives
// @Accept json
// @Produce json
// @Param body body service.ArchiveInput true "Archive record"
// @Success 201 {object} model.ArchiveRecord
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /archives [post]
func CreateArchive(archives service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ArchiveInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		rec, err := archives.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// GetArchive returns one archive record.
//
// @Summary Get an archive record
// @Tags archives
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} model.ArchiveRecord
// @Failure 404 {object} errorPayload
// @Router /archives/{id} [get]
func GetArchive(archives service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := archiveID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := archives.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// UpdateArchive edits an archive record. Its drawer and folder do not move.
//
// @Summary Update an archive record
// @Tags archives
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param body body service.ArchiveInput true "Archive record"
// @Success 200 {object} model.ArchiveRecord
// @Router /archives/{id} [put]
func UpdateArchive(archives service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := archiveID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.ArchiveInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		rec, err := archives.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// DeleteArchive removes an archive record.
//
// @Summary Delete an archive record
// @Tags archives
// @Param id path string true "Record ID"
// @Success 204
// @Router /archives/{id} [delete]
func DeleteArchive(archives service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := archiveID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := archives.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MoveToInactive moves an archive record to inactive storage.
//
// @Summary Move an archive record to inactive storage
// @Tags archives
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Success 201 {object} model.InactiveTransfer
// @Failure 409 {object} errorPayload
// @Router /archives/{id}/inactive [post]
func MoveToInactive(archives service.ArchiveService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := archiveID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var req inactiveRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}
		t, err := archives.MoveToInactive(c.UserContext(), id, req.Note)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}
