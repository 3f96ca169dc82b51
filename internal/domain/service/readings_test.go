package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_readingsService_Relay(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2099, time.December, 4, 13, 5, 9, 0, moscow)
	file := entity.SharedFile{ID: "F1", Name: "readings.xlsx", DownloadURL: "https://files.example/F1"}

	newTestReadings := func(m allMocks) *readingsService {
		return newReadings(m.mockDataManager, m.mockMessenger, m.mockReports, func() time.Time { return at })
	}

	t.Run("Should forward to every administrator with a chat user", func(t *testing.T) {
		m, _ := newServiceTestMock(t)

		m.mockMessenger.EXPECT().DownloadFile(ctx, file, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entity.SharedFile, w io.Writer) error {
				_, err := w.Write([]byte("xlsx bytes"))
				return err
			})
		m.mockReports.EXPECT().StoreSubmission(testChatUser, []byte("xlsx bytes"), at).
			Return(&entity.Report{Filename: "user_response_U4471_20991204_130509.xlsx", Content: []byte("xlsx bytes")}, nil)
		m.mockEmployeeRepo.EXPECT().GetByChatUserID(ctx, testChatUser).Return(&entity.Employee{ID: 4471, Name: "Ivan Petrov"}, nil)
		m.mockEmployeeRepo.EXPECT().ListByRole(ctx, domain.RoleAdmin).Return([]*entity.Employee{
			{ID: 900, ChatUserID: "U900"},
			{ID: 901},
			{ID: 902, ChatUserID: "U902"},
		}, nil)

		m.mockMessenger.EXPECT().SendFile(ctx, "U900", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, attachment entity.Attachment) error {
				assert.Equal(t, "Ivan Petrov submitted meter readings.", attachment.Caption)
				assert.Equal(t, "user_response_U4471_20991204_130509.xlsx", attachment.Filename)
				return nil
			})
		m.mockMessenger.EXPECT().SendFile(ctx, "U902", gomock.Any()).Return(errors.New("rate limited"))

		require.NoError(t, newTestReadings(m).Relay(ctx, testChatUser, file))
	})

	t.Run("Should reject files that are not workbooks", func(t *testing.T) {
		m, _ := newServiceTestMock(t)

		err := newTestReadings(m).Relay(ctx, testChatUser, entity.SharedFile{Name: "photo.jpg"})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
	})

	t.Run("Should fail when the download fails", func(t *testing.T) {
		m, _ := newServiceTestMock(t)
		m.mockMessenger.EXPECT().DownloadFile(ctx, file, gomock.Any()).Return(errors.New("forbidden"))

		assert.Error(t, newTestReadings(m).Relay(ctx, testChatUser, file))
	})

	t.Run("Should fail when the upload is not a workbook", func(t *testing.T) {
		m, _ := newServiceTestMock(t)
		m.mockMessenger.EXPECT().DownloadFile(ctx, file, gomock.Any()).Return(nil)
		m.mockReports.EXPECT().StoreSubmission(testChatUser, gomock.Any(), at).Return(nil, errors.New("zip: not a valid zip file"))

		assert.Error(t, newTestReadings(m).Relay(ctx, testChatUser, file))
	})
}
