package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"archiveapi/internal/model"
	serviceMocks "archiveapi/internal/service/mocks"
)

func TestPrintAddress(t *testing.T) {
	var buf bytes.Buffer
	printAddress(&buf, model.StorageAddress{CabinetPrefix: "UM", DrawerNumber: "2", FolderNumber: "51"})
	assert.Equal(t, "UM / laci 2 / folder 51\n", buf.String())

	buf.Reset()
	printAddress(&buf, model.StorageAddress{})
	assert.Equal(t, "\n", buf.String())
}

func TestRunRenumber(t *testing.T) {
	ctx := context.Background()

	t.Run("reports changed records", func(t *testing.T) {
		svc := new(serviceMocks.MockArchiveService)
		svc.On("Renumber", mock.Anything, int64(5)).Return(3, nil)
		var buf bytes.Buffer

		assert.NoError(t, runRenumber(ctx, &buf, svc, 5))
		assert.Equal(t, "unit 5: 3 records renumbered\n", buf.String())
	})

	t.Run("propagates errors", func(t *testing.T) {
		svc := new(serviceMocks.MockArchiveService)
		svc.On("Renumber", mock.Anything, int64(5)).Return(0, errors.New("db down"))

		assert.EqualError(t, runRenumber(ctx, &bytes.Buffer{}, svc, 5), "db down")
	})
}

func TestRootCommand(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["migrate"])
	assert.True(t, names["preview"])
	assert.True(t, names["renumber"])

	assert.NotNil(t, previewCmd.Flags().Lookup("unit-id"))
	assert.NotNil(t, previewCmd.Flags().Lookup("edit-id"))
	assert.NotNil(t, renumberCmd.Flags().Lookup("unit-id"))
}
