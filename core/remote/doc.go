// Package remote is the HTTP client for the external system of record.
//
// It exposes one operation per verb: List (GET a collection), Create (POST),
// Update (PATCH) and Delete. List failures of any kind are returned as a
// *TransportError and abort the caller's run. The mutating verbs return the
// response status; an unexpected status is logged as a warning and handed back
// without an error, so one failed item never aborts its siblings. Only transport
// failures (dial, TLS, cancelled context) are returned as errors.
//
// Each Client owns its connection pool. Callers that want a fresh pool per unit of
// work create a new client and Close it when done.
//
// # Usage
//
//	client := remote.NewClient(cfg.Remote, logger)
//	defer client.Close()
//
//	var posts []models.RemotePost
//	if err := client.List(ctx, cfg.Remote.PostsURL, &posts); err != nil {
//	    return err
//	}
//	status, err := client.Update(ctx, url, payload)
package remote
