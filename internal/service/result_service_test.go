package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"chatscan/backend/internal/model"
	repomock "chatscan/backend/internal/repository/mock"
	"chatscan/backend/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResultList_DefaultsAndClamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockExtractionRepository(ctrl)
	svc := service.NewResultService(repo)
	ctx := context.Background()

	repo.EXPECT().List(ctx, 50, 0).Return(nil, nil)
	_, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)

	repo.EXPECT().List(ctx, 500, 10).Return(nil, nil)
	_, err = svc.List(ctx, 9999, 10)
	require.NoError(t, err)
}

func TestResultList_NegativeOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockExtractionRepository(ctrl)
	svc := service.NewResultService(repo)

	_, err := svc.List(context.Background(), 10, -1)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestWriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockExtractionRepository(ctrl)
	svc := service.NewResultService(repo)

	phone := "+62812345678"
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	repo.EXPECT().List(gomock.Any(), gomock.Any(), 0).Return([]model.Extraction{
		{
			ID:          42,
			BatchID:     "batch-1",
			Filename:    "chat.png",
			ChatText:    "A: hi\nB: hello",
			PhoneNumber: &phone,
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			CreatedAt:   created,
		},
		{
			ID:        43,
			Filename:  "other.jpg",
			ChatText:  "plain",
			CreatedAt: created,
		},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []string{"id", "batch_id", "filename", "phone_number", "chat_date", "chat_text", "provider", "model", "created_at"}, records[0])
	require.Equal(t, "42", records[1][0])
	require.Equal(t, "batch-1", records[1][1])
	require.Equal(t, phone, records[1][3])
	require.Equal(t, "", records[1][4])
	require.Equal(t, "2025-03-01T09:30:00Z", records[1][8])
	require.Equal(t, "other.jpg", records[2][2])
}
