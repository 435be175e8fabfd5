package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/spf13/cobra"

	"github.com/jroosing/awsrest/internal/apigateway"
	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/transport"
)

// methodKey holds the four flags that address a method response.
type methodKey struct {
	restAPIID  string
	resourceID string
	httpMethod string
	statusCode string
}

func (k *methodKey) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&k.restAPIID, "rest-api-id", "", "REST API identifier")
	cmd.Flags().StringVar(&k.resourceID, "resource-id", "", "resource identifier")
	cmd.Flags().StringVar(&k.httpMethod, "http-method", "", "HTTP method of the integration, e.g. GET")
	cmd.Flags().StringVar(&k.statusCode, "status-code", "", "method response status code, e.g. 200")
	for _, name := range []string{"rest-api-id", "resource-id", "http-method", "status-code"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// callOptions are the output flags every service command shares.
type callOptions struct {
	dryRun bool
	query  string
}

func (o *callOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "print the marshalled request instead of sending it")
	cmd.Flags().StringVar(&o.query, "query", "", "JSONPath expression applied to the result, e.g. $.statusCode")
}

func (a *app) apigatewayClient() *apigateway.Client {
	return apigateway.New(a.exec, transport.Endpoint{
		URL:           a.cfg.Endpoints.APIGateway,
		SigningRegion: a.cfg.Region,
	})
}

func jsonFactory() *protocol.JSONProtocolFactory {
	return protocol.NewJSONProtocolFactory(protocol.ContentTypeJSON)
}

func printMethodResponse(cmd *cobra.Command, mr *apigateway.MethodResponse, query string) error {
	raw, err := apigateway.EncodeMethodResponse(jsonFactory(), mr)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), raw, query)
}

// parsePatch reads op=...,path=...,value=...,from=... into a PatchOperation.
// Values cannot contain commas.
func parsePatch(s string) (*apigateway.PatchOperation, error) {
	p := new(apigateway.PatchOperation)
	for _, field := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("%w: patch field %q: expected key=value", errInvalidFlag, field)
		}
		switch strings.TrimSpace(k) {
		case "op":
			p.SetOp(strings.TrimSpace(v))
		case "path":
			p.SetPath(v)
		case "value":
			p.SetValue(v)
		case "from":
			p.SetFrom(v)
		default:
			return nil, fmt.Errorf("%w: patch field %q: unknown key %q", errInvalidFlag, field, k)
		}
	}
	if p.Op == nil {
		return nil, fmt.Errorf("%w: patch %q: op is required", errInvalidFlag, s)
	}
	return p, nil
}

func parseResponseParameters(in map[string]string) (map[string]*bool, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[string]*bool, len(in))
	for k, v := range in {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: response parameter %s=%s: %v", errInvalidFlag, k, v, err)
		}
		out[k] = aws.Bool(b)
	}
	return out, nil
}

func apigatewayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apigateway",
		Short: "API Gateway method-response operations",
	}
	cmd.AddCommand(
		putMethodResponseCmd(a),
		getMethodResponseCmd(a),
		updateMethodResponseCmd(a),
		deleteMethodResponseCmd(a),
	)
	return cmd
}

func putMethodResponseCmd(a *app) *cobra.Command {
	var key methodKey
	var opts callOptions
	var params, models map[string]string

	cmd := &cobra.Command{
		Use:   "put-method-response",
		Short: "Create or replace a method response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rp, err := parseResponseParameters(params)
			if err != nil {
				return err
			}
			in := new(apigateway.PutMethodResponseInput).
				SetRestAPIID(key.restAPIID).
				SetResourceID(key.resourceID).
				SetHTTPMethod(key.httpMethod).
				SetStatusCode(key.statusCode)
			if rp != nil {
				in.SetResponseParameters(rp)
			}
			if len(models) > 0 {
				in.SetResponseModels(aws.StringMap(models))
			}

			if opts.dryRun {
				if err := in.Validate(); err != nil {
					return err
				}
				req, err := apigateway.NewPutMethodResponseMarshaller(jsonFactory()).Marshal(in)
				if err != nil {
					return err
				}
				return printRequest(cmd.OutOrStdout(), req, a.cfg.Endpoints.APIGateway)
			}

			out, err := a.apigatewayClient().PutMethodResponse(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printMethodResponse(cmd, out, opts.query)
		},
	}

	key.register(cmd)
	opts.register(cmd)
	cmd.Flags().StringToStringVar(&params, "response-parameter", nil, "response header flag, e.g. method.response.header.X-Id=true")
	cmd.Flags().StringToStringVar(&models, "response-model", nil, "response model per content type, e.g. application/json=Empty")
	return cmd
}

func getMethodResponseCmd(a *app) *cobra.Command {
	var key methodKey
	var opts callOptions

	cmd := &cobra.Command{
		Use:   "get-method-response",
		Short: "Print a method response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := new(apigateway.GetMethodResponseInput).
				SetRestAPIID(key.restAPIID).
				SetResourceID(key.resourceID).
				SetHTTPMethod(key.httpMethod).
				SetStatusCode(key.statusCode)

			if opts.dryRun {
				if err := in.Validate(); err != nil {
					return err
				}
				req, err := apigateway.NewGetMethodResponseMarshaller().Marshal(in)
				if err != nil {
					return err
				}
				return printRequest(cmd.OutOrStdout(), req, a.cfg.Endpoints.APIGateway)
			}

			out, err := a.apigatewayClient().GetMethodResponse(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printMethodResponse(cmd, out, opts.query)
		},
	}

	key.register(cmd)
	opts.register(cmd)
	return cmd
}

func updateMethodResponseCmd(a *app) *cobra.Command {
	var key methodKey
	var opts callOptions
	var patches []string

	cmd := &cobra.Command{
		Use:   "update-method-response",
		Short: "Apply patch operations to a method response",
		Long: "Apply patch operations to a method response.\n\n" +
			"Each --patch is op=<op>,path=<path>[,value=<value>][,from=<from>]. " +
			"Escape \"/\" inside a map key as \"~1\" and \"~\" as \"~0\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := new(apigateway.UpdateMethodResponseInput).
				SetRestAPIID(key.restAPIID).
				SetResourceID(key.resourceID).
				SetHTTPMethod(key.httpMethod).
				SetStatusCode(key.statusCode)
			for _, s := range patches {
				p, err := parsePatch(s)
				if err != nil {
					return err
				}
				in.AddPatchOperations(p)
			}

			if opts.dryRun {
				if err := in.Validate(); err != nil {
					return err
				}
				req, err := apigateway.NewUpdateMethodResponseMarshaller(jsonFactory()).Marshal(in)
				if err != nil {
					return err
				}
				return printRequest(cmd.OutOrStdout(), req, a.cfg.Endpoints.APIGateway)
			}

			out, err := a.apigatewayClient().UpdateMethodResponse(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printMethodResponse(cmd, out, opts.query)
		},
	}

	key.register(cmd)
	opts.register(cmd)
	cmd.Flags().StringArrayVar(&patches, "patch", nil, "patch operation (repeatable)")
	return cmd
}

func deleteMethodResponseCmd(a *app) *cobra.Command {
	var key methodKey
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "delete-method-response",
		Short: "Remove a method response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := new(apigateway.DeleteMethodResponseInput).
				SetRestAPIID(key.restAPIID).
				SetResourceID(key.resourceID).
				SetHTTPMethod(key.httpMethod).
				SetStatusCode(key.statusCode)

			if dryRun {
				if err := in.Validate(); err != nil {
					return err
				}
				req, err := apigateway.NewDeleteMethodResponseMarshaller().Marshal(in)
				if err != nil {
					return err
				}
				return printRequest(cmd.OutOrStdout(), req, a.cfg.Endpoints.APIGateway)
			}

			if err := a.apigatewayClient().DeleteMethodResponse(cmd.Context(), in); err != nil {
				return err
			}
			a.logger.Info("method response deleted",
				"rest_api_id", key.restAPIID,
				"resource_id", key.resourceID,
				"http_method", key.httpMethod,
				"status_code", key.statusCode,
			)
			return nil
		},
	}

	key.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the marshalled request instead of sending it")
	return cmd
}
