package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	mockperson "directory/internal/person/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportPersons_Stdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	persons := mockperson.NewMockService(ctrl)
	persons.EXPECT().ExportPersonsCSV(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Name\n")

		return err
	})

	var out bytes.Buffer
	require.NoError(t, exportPersons(context.Background(), persons, "", &out))
	require.Equal(t, "Name\n", out.String())
}

func TestExportPersons_File(t *testing.T) {
	ctrl := gomock.NewController(t)
	persons := mockperson.NewMockService(ctrl)
	persons.EXPECT().ExportPersonsCSV(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Name\nAnn\n")

		return err
	})

	path := filepath.Join(t.TempDir(), "persons.csv")
	var out bytes.Buffer
	require.NoError(t, exportPersons(context.Background(), persons, path, &out))
	require.Empty(t, out.String())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "Name\nAnn\n", string(content))
}

func TestExportPersons_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	persons := mockperson.NewMockService(ctrl)

	err := exportPersons(context.Background(), persons, filepath.Join(t.TempDir(), "missing", "persons.csv"), io.Discard)
	require.ErrorContains(t, err, "could not create output file")

	boom := errors.New("boom")
	persons.EXPECT().ExportPersonsCSV(gomock.Any(), gomock.Any()).Return(boom)
	err = exportPersons(context.Background(), persons, filepath.Join(t.TempDir(), "persons.csv"), io.Discard)
	require.ErrorIs(t, err, boom)
}
