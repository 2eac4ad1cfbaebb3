// Package domain contains the core model for cropcast: the two prediction
// forms, their requests and results, and the submission state each form owns.
//
// The domain is transport-agnostic: it does not depend on net/http, YAML or the
// terminal. Infra and UI adapters map into/from these types.
package domain
