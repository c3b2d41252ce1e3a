package token

import (
	"context"
	"fmt"
	"log/slog"

	domain "randstring/internal/domain/token"
	"randstring/internal/generator/instrumented"
	"randstring/internal/lib/logger/sl"
	"randstring/internal/storage"
	"randstring/pkg/randstring"
)

// Issue generates req.Count tokens and records the request in the ledger. Either every
// token is returned or none is.
func (s *Service) Issue(ctx context.Context, req domain.IssueRequest) (domain.Issued, error) {
	const op = "token.Service.Issue"

	log := s.log.With(slog.String("op", op))

	length := s.opts.DefaultLength
	if req.Length != nil {
		length = *req.Length
	}
	if length > s.opts.MaxLength {
		return domain.Issued{}, fmt.Errorf("%s: %d > %d: %w", op, length, s.opts.MaxLength, domain.ErrLengthTooLarge)
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > s.opts.MaxCount {
		return domain.Issued{}, fmt.Errorf("%s: %d: %w", op, count, domain.ErrCountOutOfRange)
	}

	unbiased := req.Unbiased || s.opts.Unbiased

	gen, name, release, err := s.generator(req, unbiased)
	if err != nil {
		return domain.Issued{}, fmt.Errorf("%s: %w", op, err)
	}
	defer release()

	tokens := make([]string, count)
	for i := range tokens {
		tokens[i], err = gen.Generate(length)
		if err != nil {
			log.Error("failed to generate token", slog.String("alphabet", name), sl.Err(err))
			return domain.Issued{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	id, err := s.recorder.SaveIssuance(ctx, storage.Issuance{
		Alphabet: name,
		Length:   length,
		Count:    count,
		Unbiased: unbiased,
		Subject:  req.Subject,
	})
	if err != nil {
		return domain.Issued{}, fmt.Errorf("%s: failed to record issuance: %w", op, err)
	}

	log.Debug("tokens issued",
		slog.Int64("issuance_id", id),
		slog.String("alphabet", name),
		slog.Int("length", length),
		slog.Int("count", count),
	)

	return domain.Issued{
		ID:       id,
		Alphabet: name,
		Length:   length,
		Unbiased: unbiased,
		Tokens:   tokens,
	}, nil
}

// generator resolves the request to a generator. Custom alphabets get a sampler of
// their own, released by the returned func.
func (s *Service) generator(req domain.IssueRequest, unbiased bool) (randstring.Generator, string, func(), error) {
	noop := func() {}

	if req.Characters != "" {
		if req.Alphabet != "" {
			return nil, "", noop, domain.ErrAlphabetConflict
		}
		if err := domain.ValidateAlphabet(req.Characters); err != nil {
			return nil, "", noop, err
		}

		sampler, err := randstring.NewSampler(req.Characters, s.samplerOptions(unbiased)...)
		if err != nil {
			return nil, "", noop, err
		}

		gen := instrumented.New(sampler, domain.CustomAlphabet)
		return gen, domain.CustomAlphabet, func() {
			if err := gen.Close(); err != nil {
				s.log.Warn("failed to close custom sampler", sl.Err(err))
			}
		}, nil
	}

	name := req.Alphabet
	if name == "" {
		name = s.opts.DefaultAlphabet
	}

	gen, ok := s.generators[samplerKey{alphabet: name, unbiased: unbiased}]
	if !ok {
		return nil, "", noop, fmt.Errorf("%q: %w", name, domain.ErrUnknownAlphabet)
	}

	return gen, name, noop, nil
}
