// Package chatlytics is the Go client for the Chatlytics conversation
// analytics API. It records threads, user messages and model runs so that
// AI interactions can be analyzed after the fact.
//
// A Client is built once and reused:
//
//	client, err := chatlytics.New(chatlytics.Config{
//		APIKey: os.Getenv("CHATLYTICS_API_KEY"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Identifiers for threads, messages and runs are assigned by the caller,
// typically from the surrounding application's own ids. NewID mints one
// when no natural id exists:
//
//	threadID := chatlytics.NewID()
//	thread, err := client.CreateThread(ctx, chatlytics.ThreadRequest{
//		ThreadID: threadID,
//		UserID:   "user-42",
//	})
//
// # Error handling
//
// Input mistakes caught before any network call surface as sentinel
// errors from the validation package, for example
// validation.ErrThreadIDRequired. Every remote or transport failure is an
// *apierror.Error carrying a Kind, the HTTP status when one was received,
// and the decoded response payload:
//
//	_, err := client.CreateMessage(ctx, req)
//	var apiErr *apierror.Error
//	if errors.As(err, &apiErr) {
//		switch apiErr.Kind {
//		case apierror.KindAuthentication:
//			// the API key was rejected
//		case apierror.KindTimeout, apierror.KindServer:
//			// transient, the call may be tried again later
//		}
//	}
//
// Transient HTTP failures (429, 500, 502, 503, 504) are retried
// automatically with exponential backoff before an error is returned.
//
// # Concurrency
//
// A Client is safe for concurrent use by multiple goroutines and holds no
// state besides its configuration and connection pool.
package chatlytics
