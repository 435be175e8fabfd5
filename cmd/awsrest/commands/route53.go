package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/jroosing/awsrest/internal/route53"
	"github.com/jroosing/awsrest/internal/transport"
)

func (a *app) route53Client() *route53.Client {
	return route53.New(a.exec, transport.Endpoint{URL: a.cfg.Endpoints.Route53})
}

func route53Cmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route53",
		Short: "Route 53 record-set operations",
	}
	cmd.AddCommand(changeRecordSetsCmd(a), listRecordSetsCmd(a))
	return cmd
}

// recordSetFlags describe the single record set a change-record-sets call
// submits.
type recordSetFlags struct {
	name          string
	rrType        string
	ttl           int64
	values        []string
	setIdentifier string
	weight        int64

	aliasZoneID   string
	aliasDNSName  string
	aliasEvaluate bool
	healthCheckID string
}

func (f *recordSetFlags) recordSet(cmd *cobra.Command) *route53.ResourceRecordSet {
	rrs := route53.NewResourceRecordSet(f.name, route53.RRType(strings.ToUpper(f.rrType)))
	for _, v := range f.values {
		rrs.AddResourceRecords(route53.NewResourceRecord(v))
	}
	if f.aliasDNSName != "" || f.aliasZoneID != "" {
		rrs.SetAliasTarget(new(route53.AliasTarget).
			SetHostedZoneID(f.aliasZoneID).
			SetDNSName(f.aliasDNSName).
			SetEvaluateTargetHealth(f.aliasEvaluate))
	} else {
		rrs.SetTTL(f.ttl)
	}
	if f.setIdentifier != "" {
		rrs.SetSetIdentifier(f.setIdentifier)
	}
	if cmd.Flags().Changed("weight") {
		rrs.SetWeight(f.weight)
	}
	if f.healthCheckID != "" {
		rrs.SetHealthCheckID(f.healthCheckID)
	}
	return rrs
}

func changeRecordSetsCmd(a *app) *cobra.Command {
	var zoneID, action, comment string
	var rs recordSetFlags
	var opts callOptions

	cmd := &cobra.Command{
		Use:   "change-record-sets",
		Short: "Create, delete or upsert one record set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			batch := new(route53.ChangeBatch).AddChanges(
				route53.NewChange(route53.ChangeAction(strings.ToUpper(action)), rs.recordSet(cmd)),
			)
			if comment != "" {
				batch.SetComment(comment)
			}
			in := new(route53.ChangeResourceRecordSetsInput).
				SetHostedZoneID(route53.CleanZoneID(zoneID)).
				SetChangeBatch(batch)

			if opts.dryRun {
				if err := in.Validate(); err != nil {
					return err
				}
				f := protocol.NewXMLProtocolFactory(protocol.ContentTypeXML)
				req, err := route53.NewChangeResourceRecordSetsMarshaller(f).Marshal(in)
				if err != nil {
					return err
				}
				return printRequest(cmd.OutOrStdout(), req, a.cfg.Endpoints.Route53)
			}

			info, err := a.route53Client().ChangeResourceRecordSets(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), info, opts.query)
		},
	}

	cmd.Flags().StringVar(&zoneID, "zone-id", "", "hosted zone id, with or without the /hostedzone/ prefix")
	cmd.Flags().StringVar(&action, "action", "", "CREATE, DELETE or UPSERT")
	cmd.Flags().StringVar(&comment, "comment", "", "change batch comment")
	cmd.Flags().StringVar(&rs.name, "name", "", "record name, e.g. www.example.com.")
	cmd.Flags().StringVar(&rs.rrType, "type", "", "record type, e.g. A")
	cmd.Flags().Int64Var(&rs.ttl, "ttl", 300, "TTL in seconds (ignored for alias records)")
	cmd.Flags().StringArrayVar(&rs.values, "value", nil, "record value (repeatable)")
	cmd.Flags().StringVar(&rs.setIdentifier, "set-identifier", "", "set identifier for routing policies")
	cmd.Flags().Int64Var(&rs.weight, "weight", 0, "weight for weighted routing")
	cmd.Flags().StringVar(&rs.healthCheckID, "health-check-id", "", "health check to associate")
	cmd.Flags().StringVar(&rs.aliasZoneID, "alias-zone-id", "", "alias target hosted zone id")
	cmd.Flags().StringVar(&rs.aliasDNSName, "alias-dns-name", "", "alias target DNS name")
	cmd.Flags().BoolVar(&rs.aliasEvaluate, "alias-evaluate-health", false, "evaluate alias target health")
	opts.register(cmd)
	_ = cmd.MarkFlagRequired("zone-id")
	_ = cmd.MarkFlagRequired("action")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func listRecordSetsCmd(a *app) *cobra.Command {
	var zoneID, startName, startType, startIdentifier string
	var maxItems int
	var opts callOptions

	cmd := &cobra.Command{
		Use:   "list-record-sets",
		Short: "Print one page of record sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := new(route53.ListResourceRecordSetsInput).SetHostedZoneID(route53.CleanZoneID(zoneID))
			if startName != "" {
				in.SetStartRecordName(startName)
			}
			if startType != "" {
				in.SetStartRecordType(route53.RRType(strings.ToUpper(startType)))
			}
			if startIdentifier != "" {
				in.SetStartRecordIdentifier(startIdentifier)
			}
			if maxItems < 0 {
				return fmt.Errorf("%w: --max-items must not be negative", errInvalidFlag)
			}
			if maxItems > 0 {
				in.SetMaxItems(strconv.Itoa(maxItems))
			}

			if opts.dryRun {
				if err := in.Validate(); err != nil {
					return err
				}
				req, err := route53.NewListResourceRecordSetsMarshaller().Marshal(in)
				if err != nil {
					return err
				}
				return printRequest(cmd.OutOrStdout(), req, a.cfg.Endpoints.Route53)
			}

			out, err := a.route53Client().ListResourceRecordSets(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), out, opts.query)
		},
	}

	cmd.Flags().StringVar(&zoneID, "zone-id", "", "hosted zone id, with or without the /hostedzone/ prefix")
	cmd.Flags().StringVar(&startName, "start-name", "", "first record name to list")
	cmd.Flags().StringVar(&startType, "start-type", "", "first record type to list (needs --start-name)")
	cmd.Flags().StringVar(&startIdentifier, "start-identifier", "", "first set identifier to list (needs --start-type)")
	cmd.Flags().IntVar(&maxItems, "max-items", 0, "page size (service default when 0)")
	opts.register(cmd)
	_ = cmd.MarkFlagRequired("zone-id")
	return cmd
}
