/*
Package platformsdk is a Go client for the HarvestNet API.

It wraps the JSON endpoints of the backend and turns error bodies into
*APIError values:

	client := platformsdk.NewClient("http://localhost:8080")

	if _, err := client.Login(ctx, "admin@harvestnet.com", "password123"); err != nil {
		var apiErr *platformsdk.APIError
		if errors.As(err, &apiErr) && apiErr.Code == platformsdk.ErrorCodeInvalidCredentials {
			// wrong password
		}
		return err
	}

	// Login stores the token, later calls send it as a bearer header.
	users, err := client.ListUsers(ctx)

The request and response types double as the server's wire types, so the
server and the SDK never drift apart.
*/
package platformsdk
