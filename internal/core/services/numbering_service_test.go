package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/services"
)

func neverTaken(ctx context.Context, number string) (bool, error) {
	return false, nil
}

func TestNextNumber_Format(t *testing.T) {
	svc := services.NewNumberingService(map[string]services.NumberExistsFunc{
		"DP": neverTaken,
	})

	number, err := svc.NextNumber(context.Background(), "DP")

	require.NoError(t, err)
	today := time.Now().UTC().Format("20060102")
	assert.Equal(t, fmt.Sprintf("DP-%s-0001", today), number)
}

func TestNextNumber_SequenceIncrementsPerPrefix(t *testing.T) {
	svc := services.NewNumberingService(map[string]services.NumberExistsFunc{
		"DP": neverTaken,
		"VR": neverTaken,
	})
	ctx := context.Background()
	today := time.Now().UTC().Format("20060102")

	first, err := svc.NextNumber(ctx, "DP")
	require.NoError(t, err)
	second, err := svc.NextNumber(ctx, "DP")
	require.NoError(t, err)
	other, err := svc.NextNumber(ctx, "VR")
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("DP-%s-0001", today), first)
	assert.Equal(t, fmt.Sprintf("DP-%s-0002", today), second)
	// Prefixes count independently.
	assert.Equal(t, fmt.Sprintf("VR-%s-0001", today), other)
}

func TestNextNumber_ProbesPastPersistedNumbers(t *testing.T) {
	today := time.Now().UTC().Format("20060102")
	taken := map[string]bool{
		fmt.Sprintf("AST-%s-0001", today): true,
		fmt.Sprintf("AST-%s-0002", today): true,
	}
	svc := services.NewNumberingService(map[string]services.NumberExistsFunc{
		"AST": func(ctx context.Context, number string) (bool, error) {
			return taken[number], nil
		},
	})

	number, err := svc.NextNumber(context.Background(), "AST")

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("AST-%s-0003", today), number)
}

func TestNextNumber_UnknownPrefix(t *testing.T) {
	svc := services.NewNumberingService(map[string]services.NumberExistsFunc{})

	number, err := svc.NextNumber(context.Background(), "XX")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.Empty(t, number)
}

func TestNextNumber_CheckerErrorPropagates(t *testing.T) {
	svc := services.NewNumberingService(map[string]services.NumberExistsFunc{
		"QC": func(ctx context.Context, number string) (bool, error) {
			return false, assert.AnError
		},
	})

	_, err := svc.NextNumber(context.Background(), "QC")

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
