// Package fandom provides an HTTP client for the Fandom-K donation and idol
// ranking API.
//
// # Overview
//
// The API is an external, read-only collaborator from this program's point of
// view. Every collection it exposes is cursor-paged: a request carries the
// cursor returned by the previous page plus a page size, and the response
// carries the next cursor or null once the stream is exhausted.
//
// # Endpoints
//
//   - GET /{team}/donations?cursor=&pageSize=          → {list, nextCursor}
//   - GET /{team}/idols?cursor=&pageSize=              → {list, nextCursor}
//   - GET /{team}/charts/{gender}?gender=&pageSize=    → {idols, nextCursor}
//
// All three are decoded into Page[T], which normalizes the differing list keys.
//
// # Client Usage
//
//	client, err := fandom.NewClient("https://fandom-k-api.vercel.app", "8-3", 5*time.Second)
//	if err != nil {
//		return err
//	}
//	page, err := client.FetchDonations(ctx, fandom.PageQuery{PageSize: 4})
//
// # Error Handling
//
// Errors are wrapped with fmt.Errorf and fall into three groups:
//
//   - Network errors: "execute request: ..."
//   - HTTP errors: *StatusError, with the server's "message" field when the
//     body is JSON
//   - Deserialization errors: "decode response: ..."
//
// The client never retries. Retry policy belongs to the caller; the paging
// controller in package feed only retries when the user asks it to.
//
// # Thread Safety
//
// Client is safe for concurrent use.
package fandom
