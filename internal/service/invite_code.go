package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "competition-registration-backend/internal/errors"

	"github.com/cenkalti/backoff/v4"
)

const (
	inviteCodeLength    = 10
	inviteCodeTimeChars = 3
	inviteCodeAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// largest multiple of len(inviteCodeAlphabet) that fits in a byte
	inviteCodeRejectAbove = 252
)

var errInviteCodeTaken = errors.New("invite code already in use")

// InviteCodeLookup reports whether a code is already used by any discipline entry
type InviteCodeLookup func(ctx context.Context, code string) (bool, error)

// InviteCodeGenerator mints short team invite codes. Codes are a base-36 time prefix
// followed by cryptographically random characters; uniqueness comes from the lookup loop.
type InviteCodeGenerator struct {
	maxRetries int
	delay      time.Duration
	now        func() time.Time
	random     io.Reader
}

// NewInviteCodeGenerator creates a generator that retries collisions maxRetries times
func NewInviteCodeGenerator(maxRetries int, delay time.Duration) *InviteCodeGenerator {
	return &InviteCodeGenerator{
		maxRetries: maxRetries,
		delay:      delay,
		now:        time.Now,
		random:     rand.Reader,
	}
}

// Generate returns a fresh code without checking uniqueness
func (g *InviteCodeGenerator) Generate() (string, error) {
	stamp := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))
	if len(stamp) > inviteCodeTimeChars {
		stamp = stamp[len(stamp)-inviteCodeTimeChars:]
	}
	stamp = strings.Repeat("0", inviteCodeTimeChars-len(stamp)) + stamp

	var sb strings.Builder
	sb.Grow(inviteCodeLength)
	sb.WriteString(stamp)

	buf := make([]byte, inviteCodeLength)
	for sb.Len() < inviteCodeLength {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if b >= inviteCodeRejectAbove {
				continue
			}
			sb.WriteByte(inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)])
			if sb.Len() == inviteCodeLength {
				break
			}
		}
	}
	return sb.String(), nil
}

// GenerateUnique generates codes until lookup reports one unused. Collisions and lookup
// failures are both retried with a constant backoff; running out of retries yields
// ErrInviteCodeExhausted.
func (g *InviteCodeGenerator) GenerateUnique(ctx context.Context, lookup InviteCodeLookup) (string, error) {
	var (
		code    string
		lastErr error
	)
	operation := func() error {
		candidate, err := g.Generate()
		if err != nil {
			lastErr = err
			return err
		}
		taken, err := lookup(ctx, candidate)
		if err != nil {
			lastErr = err
			return err
		}
		if taken {
			lastErr = errInviteCodeTaken
			return errInviteCodeTaken
		}
		code = candidate
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(g.delay), uint64(g.maxRetries)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrInviteCodeExhausted, lastErr)
	}
	return code, nil
}
