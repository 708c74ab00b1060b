package github

import (
	"context"
	"iter"

	"github.com/google/go-github/v60/github"
)

// paginate turns a page-fetching function into a lazy sequence. Pages
// are fetched only as the consumer advances; stopping early leaves the
// remaining pages unfetched. Each page fetch goes through the retry
// policy; an exhausted or non-retryable error is yielded once, wrapped
// as an *APIError, and the sequence ends.
func paginate[R any, T any](
	ctx context.Context,
	retry RetryPolicy,
	endpoint string,
	fetch func(ctx context.Context, page int) ([]R, *github.Response, error),
	convert func(R) T,
) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		page := 0
		for {
			var (
				items []R
				resp  *github.Response
			)
			err := retry.Do(ctx, func() error {
				var fetchErr error
				items, resp, fetchErr = fetch(ctx, page)
				return fetchErr
			})
			if err != nil {
				var zero T
				yield(zero, apiError(endpoint, err))
				return
			}
			for _, item := range items {
				if !yield(convert(item), nil) {
					return
				}
			}
			if resp == nil || resp.NextPage == 0 {
				return
			}
			page = resp.NextPage
		}
	}
}

// Collect materializes a lazy sequence into a slice, stopping at the
// first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
