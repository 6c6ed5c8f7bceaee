/*
Package mrpsdk provides a client SDK for the panaderia MRP service.

The package is organized around two types:

  - Client: unauthenticated operations and the login flow
  - Session: authenticated operations carrying an opaque session token

Create a Client to reach public endpoints and log in:

	client := mrpsdk.NewClient("http://localhost:8080")

	// Check service health
	err := client.Livez(ctx)

	// Authenticate to create a session
	session, err := client.Login(ctx, "admin", "Admin2024!")

Use the Session for everything else:

	products, err := session.ListProducts(ctx)
	snapshot, err := session.Dashboard(ctx)
	err = session.Logout(ctx)

Server-side errors arrive as *APIError carrying the HTTP status, a stable
error code and, for validation failures, the offending fields.
*/
package mrpsdk
