// Package services contains stateless domain services that coordinate rules
// across aggregates: line pricing against a dish's declared options, and the
// role-based access policy for viewing and editing orders.
package services
