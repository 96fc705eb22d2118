// Package httpapi exposes the country directory, the phone core and the UI
// strings catalog as a read-only JSON service.
//
// # Routes
//
//	GET /v1/countries            ?locale= &allowed= &excluded= &preferred= &flags=
//	GET /v1/countries/search     ?q= &ranked= &allowed= &excluded= &flags=
//	GET /v1/countries/{code}
//	GET /v1/dial-codes/{dialCode}
//	GET /v1/phone/parse          ?number= &region=
//	GET /v1/phone/format         ?number= &region= &style=
//	GET /v1/phone/normalize      ?text=
//	GET /v1/strings              ?locale= (or Accept-Language)
//	GET /healthz
//	GET /readyz
//	GET /metrics
//
// List parameters accept repeated or comma separated values. Lookup misses
// and unknown routes return 404 with a JSON body:
//
//	{"error": "Not Found", "request_id": "..."}
//
// Nothing else fails: unparsable numbers come back as invalid results and
// unknown styles fall back to E.164.
//
// # Usage
//
//	srv := httpapi.New(
//	    httpapi.WithLogger(log),
//	    httpapi.WithAddress(":8080"),
//	)
//	if err := srv.Run(ctx); err != nil {
//	    log.Error("server failed", slog.Any("error", err))
//	}
//
// # Middleware
//
// Every request passes through [RequestID], [AccessLog], [Instrument],
// [Recover] and [Locale]. The request ID and locale are stored with
// logger.WithRequestID and logger.WithLocale so a logger built with the
// matching extractors tags every record.
package httpapi
