package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmarques/retailingest/internal/transaction"
)

func sampleParams(n int) []transaction.CreateParams {
	params := make([]transaction.CreateParams, n)
	for i := range params {
		params[i] = transaction.CreateParams{
			BillNo:     "536365",
			Itemname:   "WHITE HANGING HEART T-LIGHT HOLDER",
			Date:       time.Date(2010, 12, 1, 8, 26, 0, 0, time.UTC),
			PriceCents: 255,
			CustomerID: "17850",
			Country:    "United Kingdom",
		}
	}

	return params
}

func TestService_LoadBatch(t *testing.T) {
	type testCase struct {
		name      string
		params    []transaction.CreateParams
		setupMock func(repo *transaction.MockRepository, ltx *transaction.MockLoadTx)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			params: sampleParams(3),
			setupMock: func(repo *transaction.MockRepository, ltx *transaction.MockLoadTx) {
				repo.EXPECT().BeginLoad(gomock.Any()).Return(ltx, nil)
				ltx.EXPECT().
					CreateTransactions(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, txs []*transaction.Transaction) error {
						for i, tx := range txs {
							tx.ID = int64(i + 1)
						}
						return nil
					})
				ltx.EXPECT().Commit().Return(nil)
				ltx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantLen: 3,
		},
		{
			name:   "EmptyInput",
			params: nil,
			// No repository interaction at all for an empty batch.
			setupMock: func(_ *transaction.MockRepository, _ *transaction.MockLoadTx) {},
			wantLen:   0,
		},
		{
			name:   "BeginError",
			params: sampleParams(1),
			setupMock: func(repo *transaction.MockRepository, _ *transaction.MockLoadTx) {
				repo.EXPECT().BeginLoad(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name:   "CreateErrorRollsBack",
			params: sampleParams(2),
			setupMock: func(repo *transaction.MockRepository, ltx *transaction.MockLoadTx) {
				repo.EXPECT().BeginLoad(gomock.Any()).Return(ltx, nil)
				ltx.EXPECT().
					CreateTransactions(gomock.Any(), gomock.Any()).
					Return(errors.New("numeric field overflow"))
				ltx.EXPECT().Rollback().Return(nil)
			},
			wantErr: true,
		},
		{
			name:   "CommitError",
			params: sampleParams(1),
			setupMock: func(repo *transaction.MockRepository, ltx *transaction.MockLoadTx) {
				repo.EXPECT().BeginLoad(gomock.Any()).Return(ltx, nil)
				ltx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
				ltx.EXPECT().Commit().Return(errors.New("server closed connection"))
				ltx.EXPECT().Rollback().Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			ltx := transaction.NewMockLoadTx(ctrl)
			tt.setupMock(repo, ltx)

			svc := transaction.NewService(repo)
			got, err := svc.LoadBatch(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.Len(t, got, tt.wantLen)

			for i, tx := range got {
				assert.Equal(t, int64(i+1), tx.ID)
			}
		})
	}
}

func TestService_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().CountTransactions(gomock.Any()).Return(int64(541909), nil)

	svc := transaction.NewService(repo)
	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(541909), count)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	country := "France"
	filter := transaction.ListFilter{Country: &country}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		ListTransactions(gomock.Any(), filter).
		Return([]*transaction.Transaction{{ID: 1}, {ID: 2}}, nil)

	svc := transaction.NewService(repo)
	txs, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}
