// Package portalcx provides types, interfaces, and helpers for working with the
// PortalCX customer-portal API.
//
// # Overview
//
// The portalcx package defines the request models (Template, TemplateStage,
// Project, StageCompletion, CustomerPortalRequest, ...), the normalized
// Result returned by every call, the error taxonomy, and the resource client
// interfaces. A concrete implementation is provided by the pcxclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/portalcx/portalcx-go/pkg/pcxclient"
//	  "github.com/portalcx/portalcx-go/pkg/portalcx"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := pcxclient.New(ctx, &portalcx.Config{BaseURL: "https://api.portalcx.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  if _, err := cli.Login(ctx, "admin@example.com", "secret"); err != nil { log.Fatal(err) }
//
//	  result, err := cli.CreateTemplate(ctx, &portalcx.Template{
//	    Title: "Solar Installation", ContactEmail: "pm@example.com",
//	    ContactPhone: "1234567890", CompanyName: "Solar Co",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  templateID, err := portalcx.TemplateIDFromResult(result)
//	  _ = templateID
//	}
//
// # Sparse payloads
//
// Every request model implements Payload. Optional fields are pointers and
// are left out of the request entirely when nil; use Ptr to set them.
//
// # Responses
//
// Successful calls return a Result. JSON bodies are decoded into Value; bodies
// that are not JSON are returned as text, and empty bodies as an empty map.
// Most endpoints wrap their answer in an Envelope of {status, message, data}.
//
// # Errors
//
// Failures are one of three kinds: DomainError (the API answered with a status
// other than 200 or 204), TransportError (no response was obtained) and
// ValidationError (input rejected before sending). KindOf classifies an error;
// IsNotFound, IsUnauthorized and IsForbidden branch on common statuses.
package portalcx
