//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"avia-booking/internal/flight/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlightRepo struct {
	gotPage int
	gotSize int
}

func (s *stubFlightRepo) FindPage(_ context.Context, page, size int) ([]*usecase.FlightRM, int64, error) {
	s.gotPage = page
	s.gotSize = size
	return []*usecase.FlightRM{}, 0, nil
}

func (s *stubFlightRepo) FindByNumber(context.Context, string) (*usecase.FlightRM, error) {
	return nil, nil
}

func TestGetFlights_ClampsPagination(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		size     int
		wantPage int
		wantSize int
	}{
		{"defaults for non-positive input", 0, 0, 1, usecase.DefaultPageSize},
		{"negative page", -3, 5, 1, 5},
		{"size above maximum", 1, 500, 1, usecase.MaxPageSize},
		{"valid values pass through", 2, 20, 2, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubFlightRepo{}
			q := usecase.NewFlightQueries(repo)

			page, err := q.GetFlights(context.Background(), tc.page, tc.size)
			require.NoError(t, err)

			assert.Equal(t, tc.wantPage, repo.gotPage)
			assert.Equal(t, tc.wantSize, repo.gotSize)
			assert.Equal(t, tc.wantPage, page.Page)
			assert.Equal(t, tc.wantSize, page.PageSize)
		})
	}
}
