// Package portal serves the provisioning web interface while the fallback
// access point is up.
//
// Routes:
//
//	GET  /         credential form
//	GET  /update   start or poll a manual join (POST accepted too)
//	GET  /connect  confirm a successful join and release the manager
//	GET  /delete   wipe every stored credential
//	GET  /status   JSON summary for scripts
//
// /update is single-flight: while a join is pending, every request gets the
// wait page, which refreshes itself until the join resolves. A failed join
// sends the user back to the form; a successful one to /connect.
package portal
