package types_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/diwise/sagemaker-client/pkg/sagemaker/types"
	"github.com/matryer/is"
)

func TestResourceSpecRoundTrip(t *testing.T) {
	is := is.New(t)

	spec := &types.ResourceSpec{
		InstanceType:      types.AppInstanceType("ml.t3.medium"),
		SageMakerImageArn: ptr("arn:aws:sagemaker:us-west-2:111122223333:image/my-image"),
	}

	body, err := json.Marshal(spec)
	is.NoErr(err)
	is.Equal(string(body), `{"SageMakerImageArn":"arn:aws:sagemaker:us-west-2:111122223333:image/my-image","InstanceType":"ml.t3.medium"}`)

	decoded := &types.ResourceSpec{}
	is.NoErr(json.Unmarshal(body, decoded))

	is.True(decoded.Equal(spec))
	is.Equal(decoded.HashCode(), spec.HashCode())
	is.Equal(decoded.InstanceType, types.AppInstanceTypeMlT3Medium)
}

func TestChannelSpecificationOmitsUnsetCompressionTypes(t *testing.T) {
	is := is.New(t)

	channel := &types.ChannelSpecification{}
	channel.AddSupportedContentTypes("text/csv")

	body, err := json.Marshal(channel)
	is.NoErr(err)
	is.Equal(string(body), `{"SupportedContentTypes":["text/csv"]}`)
	is.True(!strings.Contains(string(body), "SupportedCompressionTypes"))

	channel.AddSupportedCompressionTypes()
	body, err = json.Marshal(channel)
	is.NoErr(err)
	is.Equal(string(body), `{"SupportedContentTypes":["text/csv"],"SupportedCompressionTypes":[]}`) // an empty list is still sent

	decoded := &types.ChannelSpecification{}
	is.NoErr(json.Unmarshal(body, decoded))
	is.True(decoded.Equal(channel))
}

func TestEnumConstantAndRawStringAreEqual(t *testing.T) {
	is := is.New(t)

	fromConstant := &types.AppDetails{AppType: types.AppTypeJupyterServer}
	fromString := &types.AppDetails{AppType: types.AppType("JupyterServer")}

	is.True(fromConstant.Equal(fromString))
	is.Equal(fromConstant.HashCode(), fromString.HashCode())
	is.Equal(string(fromString.AppType), "JupyterServer")
}

func TestUnknownEnumValuesPassThrough(t *testing.T) {
	is := is.New(t)

	details := &types.AppDetails{}
	is.NoErr(json.Unmarshal([]byte(`{"AppType":"Canvas","Status":"InService"}`), details))

	is.Equal(details.AppType, types.AppType("Canvas"))
	is.True(!details.AppType.IsKnown())
	is.True(details.Status.IsKnown())
	is.Equal(details.String(), "{AppType: Canvas,Status: InService}")
}

func TestEnumValues(t *testing.T) {
	is := is.New(t)

	is.Equal(types.AppStatus("").Values(), []types.AppStatus{
		types.AppStatusDeleted,
		types.AppStatusDeleting,
		types.AppStatusFailed,
		types.AppStatusInService,
		types.AppStatusPending,
	})
	is.True(!types.AppStatus("").IsKnown())
	is.True(types.TargetDeviceX86Win64.IsKnown())
	is.Equal(string(types.TargetPlatformArchArmEabihf), "ARM_EABIHF")
}

func TestCollectionParametersRejectDuplicateKeys(t *testing.T) {
	is := is.New(t)

	cfg := &types.CollectionConfiguration{CollectionName: ptr("weights")}
	is.NoErr(cfg.PutCollectionParameters("save_interval", "100"))

	err := cfg.PutCollectionParameters("save_interval", "200")
	is.True(errors.Is(err, smerrors.ErrDuplicateKey))
	is.Equal(err.Error(), "duplicated keys (save_interval) are provided")
	is.Equal(cfg.CollectionParameters["save_interval"], "100") // first value is kept

	cfg.ClearCollectionParameters()
	is.True(cfg.CollectionParameters == nil)
	is.Equal(cfg.String(), "{CollectionName: weights}")
}

func TestSearchExpressionRendersNestedExpressions(t *testing.T) {
	is := is.New(t)

	inner := types.SearchExpression{Operator: types.BooleanOperatorOr}
	inner.AddFilters(
		types.Filter{Name: ptr("TrainingJobStatus"), Operator: types.OperatorEquals, Value: ptr("Completed")},
		types.Filter{Name: ptr("TrainingJobStatus"), Operator: types.OperatorEquals, Value: ptr("Stopped")},
	)

	outer := &types.SearchExpression{Operator: types.BooleanOperatorAnd}
	outer.AddSubExpressions(inner)

	is.Equal(outer.String(), "{SubExpressions: [{Filters: [{Name: TrainingJobStatus,Operator: Equals,Value: Completed}, {Name: TrainingJobStatus,Operator: Equals,Value: Stopped}],Operator: Or}],Operator: And}")

	other := &types.SearchExpression{Operator: types.BooleanOperatorAnd}
	other.AddSubExpressions(inner)
	is.True(outer.Equal(other))

	other.SubExpressions[0].Operator = types.BooleanOperatorAnd
	is.True(!outer.Equal(other))
}

func TestTimestampIsEncodedAsEpochSeconds(t *testing.T) {
	is := is.New(t)

	created := types.NewTimestamp(time.Date(2020, 2, 29, 13, 37, 0, 123456789, time.UTC))
	details := &types.DomainDetails{DomainId: ptr("d-abc"), CreationTime: created}

	body, err := json.Marshal(details)
	is.NoErr(err)
	is.Equal(string(body), `{"DomainId":"d-abc","CreationTime":1582983420.123}`)

	decoded := &types.DomainDetails{}
	is.NoErr(json.Unmarshal(body, decoded))
	is.True(decoded.Equal(details))
	is.Equal(decoded.CreationTime.EpochMillis(), int64(1582983420123))
	is.Equal(decoded.String(), "{DomainId: d-abc,CreationTime: 2020-02-29T13:37:00.123Z}")
}

func TestTimestampAcceptsDateTimeStrings(t *testing.T) {
	is := is.New(t)

	ts := &types.Timestamp{}
	is.NoErr(json.Unmarshal([]byte(`"2020-02-29T13:37:00.5Z"`), ts))
	is.Equal(ts.EpochMillis(), int64(1582983420500))

	is.True(json.Unmarshal([]byte(`"yesterday"`), ts) != nil)
	is.True(json.Unmarshal([]byte(`true`), ts) != nil)
}

func TestTimestampsEqualAtMillisecondPrecision(t *testing.T) {
	is := is.New(t)

	at := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	a := types.Timestamp(at.Add(100 * time.Microsecond))
	b := types.Timestamp(at.Add(900 * time.Microsecond))

	is.True((&types.AppDetails{CreationTime: &a}).Equal(&types.AppDetails{CreationTime: &b}))
}

func TestHashCodeMatchesFieldWiseAccumulation(t *testing.T) {
	is := is.New(t)

	tag := &types.Tag{Key: ptr("a")}
	// 31 * (31*1 + "a".hashCode()) + 0
	is.Equal(tag.HashCode(), int32(31*(31+97)))

	var nilTag *types.Tag
	is.True(!tag.Equal(nilTag))
	is.True(nilTag.Equal(nil))
}

func ptr[T any](v T) *T {
	return &v
}
