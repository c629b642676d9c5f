package client

import (
	"context"
	"log/slog"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/sagemaker-client/pkg/sagemaker"
)

// ForEachPage calls operation with in and hands every result to callback,
// following NextToken until the service stops returning one. The next token is
// written into in before each subsequent call. A maxPages above zero stops the
// iteration after that many pages. The number of pages fetched is returned.
func ForEachPage[In sagemaker.PaginatedRequest, Out sagemaker.PaginatedResult](
	ctx context.Context,
	in In,
	operation func(context.Context, In) (Out, error),
	callback func(Out) error,
	maxPages int,
) (pages int, err error) {

	logger := logging.GetFromContext(ctx)

	var previous *string

	for {
		var out Out

		out, err = operation(ctx, in)
		if err != nil {
			return
		}
		pages++

		if err = callback(out); err != nil {
			return
		}

		token := out.GetNextToken()
		if token == nil || *token == "" {
			break
		}

		if previous != nil && *previous == *token {
			logger.Warn("service returned the same next token twice, stopping", slog.Int("pages", pages))
			break
		}

		if maxPages > 0 && pages >= maxPages {
			break
		}

		logger.Debug("fetching next page", slog.Int("pages", pages))

		in.SetNextToken(token)
		previous = token
	}

	return
}
