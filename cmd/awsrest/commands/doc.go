// Package commands defines the awsrest CLI.
//
// Commands
//
//   - apigateway put-method-response     Create or replace a method response
//   - apigateway get-method-response     Print a method response
//   - apigateway update-method-response  Apply patch operations
//   - apigateway delete-method-response  Remove a method response
//   - route53 change-record-sets         Submit a single-change batch
//   - route53 list-record-sets           Print one page of record sets
//   - stub serve                         Run the local fake endpoint
//
// The root command loads configuration and builds the shared transport
// before any subcommand runs. Service commands accept --dry-run to print the
// marshalled request instead of sending it, and --query to select part of
// the JSON result with a JSONPath expression.
package commands
