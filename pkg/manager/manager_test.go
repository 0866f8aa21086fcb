package manager

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"showsync/pkg/provider/mocks"
	"showsync/pkg/storage"
	"showsync/pkg/storage/sqlite"
)

func newTestManager(t *testing.T) (ShowManager, *mocks.MockClient, storage.Storage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	store, err := sqlite.New(":memory:")
	require.Nil(t, err)

	return New(client, store), client, store
}

func ptr[A any](a A) *A {
	return &a
}
