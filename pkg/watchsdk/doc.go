// Package watchsdk is the client SDK for the WatchAsset API. It plays the
// role the browser frontend's auth layer plays in the web app: it keeps the
// issued tokens in a pluggable TokenStore, injects the bearer token into
// every request, and transparently refreshes the access token once when a
// request comes back 401.
//
// Basic usage:
//
//	store := watchsdk.NewMemoryStore()
//	client := watchsdk.New("http://localhost:3001", store)
//
//	// After the OAuth2 redirect handed us a token:
//	result := client.Bootstrap(ctx, redirectQuery)
//	if result.State == watchsdk.StateTokenFromRedirect {
//	    fmt.Println("hello,", result.Identity.DisplayName())
//	}
//
//	watches, err := client.Watches(ctx)
//
// The retry behavior is deliberately narrow: exactly one refresh-and-retry
// per call, and only on the first 401. A 401 on the retried call is returned
// to the caller, who must treat it as "re-authenticate".
package watchsdk
