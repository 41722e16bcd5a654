package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgrepo "github.com/Zero-Sign/swift-hire/internal/repositories/postgres"
	"github.com/Zero-Sign/swift-hire/internal/utils"
)

func TestFeedbackCreate(t *testing.T) {
	db := testDB(t)
	svc := NewFeedbackService(pgrepo.NewFeedbackRepo(db))
	ctx := context.Background()

	f, err := svc.Create(ctx, FeedbackInput{
		UserEmail: "ali@example.com",
		UserName:  "Ali",
		UserRole:  "Candidate",
		Rating:    4,
		Message:   "smooth application flow",
	})
	require.NoError(t, err)
	assert.NotZero(t, f.ID)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(ctx, FeedbackInput{
			UserEmail: "ali@example.com",
			UserName:  "Ali",
			UserRole:  "Candidate",
			Rating:    rating,
		})
		assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), "rating %d", rating)
	}

	_, err = svc.Create(ctx, FeedbackInput{
		UserEmail: "ali@example.com",
		UserName:  "Ali",
		UserRole:  "Candidate",
		Rating:    3,
		Message:   strings.Repeat("x", 301),
	})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.Create(ctx, FeedbackInput{Rating: 3})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestFeedbackListAndDelete(t *testing.T) {
	db := testDB(t)
	svc := NewFeedbackService(pgrepo.NewFeedbackRepo(db))
	ctx := context.Background()

	var lastID uint
	for _, email := range []string{"a@example.com", "a@example.com", "b@example.com"} {
		f, err := svc.Create(ctx, FeedbackInput{
			UserEmail: email,
			UserName:  "User",
			UserRole:  "Candidate",
			Rating:    5,
		})
		require.NoError(t, err)
		lastID = f.ID
	}

	all, err := svc.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.ListByUser(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	got, err := svc.Get(ctx, lastID)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", got.UserEmail)

	require.NoError(t, svc.Delete(ctx, lastID))
	_, err = svc.Get(ctx, lastID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	err = svc.Delete(ctx, lastID)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
