package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestCodeClass(t *testing.T) {
	tests := []struct {
		code Code
		want Class
	}{
		{CodeCampaignIDEmpty, ClassInvalidArgument},
		{CodeTargetCPAInvalid, ClassInvalidArgument},
		{CodeCostNegative, ClassInvalidArgument},
		{CodeConversionsZero, ClassDivisionByZero},
		{CodePerformanceNoData, ClassUpstreamFailure},
		{CodePerformanceAPIError, ClassUpstreamFailure},
		{CodeSeedFailed, ClassInternal},
		{CodeUnknown, ClassInternal},
	}

	for _, tc := range tests {
		if got := tc.code.Class(); got != tc.want {
			t.Errorf("Class(%s) = %s, want %s", tc.code, got, tc.want)
		}
	}
}

func TestIsMatchesByCode(t *testing.T) {
	base := New(CodeConversionsZero, "cannot calculate CPA with zero conversions")
	wrapped := fmt.Errorf("calculate: %w", base)

	if !stderrors.Is(wrapped, New(CodeConversionsZero, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(wrapped, New(CodeCostNegative, "cost cannot be negative")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestClassOfUnwrapsChains(t *testing.T) {
	cause := stderrors.New("socket closed")
	err := fmt.Errorf("fetch: %w", Wrap(CodePerformanceAPIError, "advertising API request failed", cause))

	if got := ClassOf(err); got != ClassUpstreamFailure {
		t.Fatalf("ClassOf = %s, want %s", got, ClassUpstreamFailure)
	}
	if got := ClassOf(cause); got != ClassInternal {
		t.Fatalf("ClassOf(plain error) = %s, want %s", got, ClassInternal)
	}
}

func TestMetadataOf(t *testing.T) {
	err := WithMetadata(CodePerformanceNoData, "no data", map[string]string{"CampaignID": "c-1"})

	meta := MetadataOf(fmt.Errorf("analyze: %w", err))
	if meta["CampaignID"] != "c-1" {
		t.Fatalf("expected metadata passthrough, got %v", meta)
	}
	if MetadataOf(stderrors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain errors")
	}
}
