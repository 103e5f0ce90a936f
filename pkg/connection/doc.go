// Package connection keeps a device joined to a wireless network.
//
// The Manager owns the connection state machine:
//
//	DISCONNECTED --join--> CONNECTED
//	DISCONNECTED --candidates exhausted--> PROVISIONING_ACTIVE
//	PROVISIONING_ACTIVE --CompleteProvisioning--> CONNECTED
//
// # Joining Stored Networks
//
// EnsureConnected returns immediately if the radio is already joined.
// Otherwise it scans once and walks the credential store in slot order.
// Candidates missing from the scan are skipped without a join request.
// Each join gets its own timeout (15 seconds by default, see SetTimeout);
// a timed-out join is disconnected before the next candidate is tried.
// The first successful join wins and later slots are never touched.
//
// # Provisioning
//
// When no stored network can be joined, the Manager brings up the fallback
// access point, starts the Portal once the AP has an address, and blocks
// until CompleteProvisioning is called. The AP stays up until then.
//
// The portal drives manual joins through BeginManualAttempt, which runs
// ConnectWithSave on its own goroutine. At most one manual attempt is in
// flight, and joins from any source are serialized.
package connection
