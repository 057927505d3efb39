package option

import (
	"testing"
	"time"

	"github.com/lemconn/krakenlink/model"
)

func TestApplyArgsOptions_Empty(t *testing.T) {
	args := ApplyArgsOptions()
	if args.Limit != nil || args.Since != nil || args.TwoFactor != nil || args.GenerateNew != nil {
		t.Fatalf("expected all optional fields unset, got %+v", args)
	}
	if _, ok := GetInt(args.Limit); ok {
		t.Fatalf("GetInt should report absent")
	}
}

func TestApplyArgsOptions_Values(t *testing.T) {
	since := time.Unix(1700000000, 0)
	args := ApplyArgsOptions(
		WithLimit(10),
		WithSince(since),
		WithTwoFactor("123456"),
		WithLedgerTypes(model.LedgerEntryTypeDeposit, model.LedgerEntryTypeTrade),
		WithGenerateNew(false),
		nil,
	)

	if v, ok := GetInt(args.Limit); !ok || v != 10 {
		t.Fatalf("limit = %v, %v", v, ok)
	}
	if v, ok := GetTime(args.Since); !ok || !v.Equal(since) {
		t.Fatalf("since = %v, %v", v, ok)
	}
	if v, ok := GetString(args.TwoFactor); !ok || v != "123456" {
		t.Fatalf("two factor = %v, %v", v, ok)
	}
	if len(args.LedgerTypes) != 2 {
		t.Fatalf("ledger types = %v", args.LedgerTypes)
	}
	// false 也是显式设置
	if v, ok := GetBool(args.GenerateNew); !ok || v {
		t.Fatalf("generate new = %v, %v", v, ok)
	}
}

func TestGetString_EmptyIsAbsent(t *testing.T) {
	empty := ""
	if _, ok := GetString(&empty); ok {
		t.Fatalf("empty string should be absent")
	}
	if _, ok := GetTime(&time.Time{}); ok {
		t.Fatalf("zero time should be absent")
	}
}

func TestApplyOptions(t *testing.T) {
	opts := ApplyOptions(WithAPIKey("k"), WithSecretKey("s"), WithTimeout(5*time.Second), WithRateLimit(1, 3))
	if opts.APIKey != "k" || opts.SecretKey != "s" || opts.Timeout != 5*time.Second {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.RateLimit != 1 || opts.RateBurst != 3 {
		t.Fatalf("unexpected rate limit: %v/%v", opts.RateLimit, opts.RateBurst)
	}
}
