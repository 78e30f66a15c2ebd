package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
)

// SearchPageSize is the number of results requested per query; only the first page is read
const SearchPageSize = 100

// AccountResult holds the search hits of one query for one account
type AccountResult struct {
	AccountLabel string
	Items        []ports.SearchItem
	QueryLabel   string
	Username     string
}

// AccountFetch is everything fetched for one account in a cycle
type AccountFetch struct {
	Credentials *ports.Credentials // nil when the account has no usable token
	Results     []AccountResult
	Warnings    []domain.Warning
}

// AccountFetcher runs an account's queries against the platform
type AccountFetcher struct {
	credentials ports.CredentialSource
	identities  *IdentityCache
	searcher    ports.PullRequestSearcher
}

// NewAccountFetcher creates a new AccountFetcher
func NewAccountFetcher(
	searcher ports.PullRequestSearcher,
	credentials ports.CredentialSource,
	identities *IdentityCache,
) *AccountFetcher {
	return &AccountFetcher{
		credentials: credentials,
		identities:  identities,
		searcher:    searcher,
	}
}

// Credentials resolves the token of account, failing with domain.ErrCredentialMissing
func (f *AccountFetcher) Credentials(account domain.Account) (ports.Credentials, error) {
	if account.TokenEnvVar == "" {
		return ports.Credentials{}, fmt.Errorf("%w: no token_env_var configured for %s",
			domain.ErrCredentialMissing, account.DisplayLabel())
	}

	token, ok := f.credentials.Lookup(account.TokenEnvVar)
	if !ok {
		return ports.Credentials{}, fmt.Errorf("%w: token not found in %s",
			domain.ErrCredentialMissing, account.TokenEnvVar)
	}

	return ports.Credentials{APIBase: account.BaseURL(), Token: token}, nil
}

// Fetch runs every query of account sequentially. Query failures become warnings with an
// empty result in their place; a missing token yields no results at all.
func (f *AccountFetcher) Fetch(ctx context.Context, account domain.Account) AccountFetch {
	label := account.DisplayLabel()

	creds, err := f.Credentials(account)
	if err != nil {
		logging.Logger.Warn("Skipping account without credentials", "account", label, "error", err)
		return AccountFetch{
			Warnings: []domain.Warning{{
				Account: label,
				Kind:    domain.WarningCredentialMissing,
				Message: err.Error(),
			}},
		}
	}

	username, err := f.identities.Login(ctx, account.TokenEnvVar, creds)
	if err != nil {
		logging.Logger.Warn("Failed to resolve account identity", "account", label, "error", err)
		username = ""
	}

	fetch := AccountFetch{Credentials: &creds}
	for _, q := range BuildQueries(account.Filters) {
		logging.Logger.Debug("Running search", "account", label, "query", q.Label, "search", q.Search)

		items, err := f.searcher.SearchIssues(ctx, creds, q.Search, SearchPageSize)
		if err != nil {
			logging.Logger.Warn("Search failed", "account", label, "query", q.Label, "error", err)
			fetch.Warnings = append(fetch.Warnings, domain.Warning{
				Account: label,
				Kind:    domain.WarningQueryFailure,
				Message: queryFailureMessage(err),
				Query:   q.Label,
			})
			items = nil
		}

		fetch.Results = append(fetch.Results, AccountResult{
			AccountLabel: label,
			Items:        items,
			QueryLabel:   q.Label,
			Username:     username,
		})
	}

	return fetch
}

func queryFailureMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return fmt.Sprintf("%v: %v", domain.ErrQueryFailed, err)
}
