package metrics

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/bcgov/gh-org-report/internal/models"
)

// CloudWatchAPI defines the CloudWatch client interface used for metrics.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Emitter sends run metrics to CloudWatch.
type Emitter struct {
	client    CloudWatchAPI
	namespace string
}

// NewEmitter creates a CloudWatch metrics emitter.
func NewEmitter(cfg aws.Config, namespace string) *Emitter {
	return &Emitter{
		client:    cloudwatch.NewFromConfig(cfg),
		namespace: namespace,
	}
}

// EmitReportSummary publishes report run metrics.
func (e *Emitter) EmitReportSummary(ctx context.Context, summary models.ReportSummary) error {
	data := []types.MetricDatum{
		metricDatum("ReposReported", summary.ReposReported),
		metricDatum("ReposFailed", summary.ReposFailed),
		metricDatum("CollaboratorRows", summary.CollaboratorRows),
		metricDatum("ReposWithAdmin", summary.ReposWithAdmin),
		metricDatum("ReposWithLinked", summary.ReposWithLinked),
	}
	return e.put(ctx, data)
}

// EmitReconcileSummary publishes reconcile run metrics.
func (e *Emitter) EmitReconcileSummary(ctx context.Context, summary models.ReconcileSummary) error {
	data := []types.MetricDatum{
		metricDatum("Invites", summary.Invites),
		metricDatum("Removals", summary.Removals),
		metricDatum("ActionsExecuted", summary.ActionsExecuted),
		metricDatum("ActionsFailed", summary.ActionsFailed),
	}
	return e.put(ctx, data)
}

func (e *Emitter) put(ctx context.Context, data []types.MetricDatum) error {
	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(e.namespace),
		MetricData: data,
	})
	return err
}

func metricDatum(name string, value int) types.MetricDatum {
	return types.MetricDatum{
		MetricName: aws.String(name),
		Unit:       types.StandardUnitCount,
		Value:      aws.Float64(float64(value)),
	}
}
