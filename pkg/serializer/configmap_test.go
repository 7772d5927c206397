package serializer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	apperrors "github.com/recipeapp/recipegen/pkg/errors"
	"github.com/recipeapp/recipegen/pkg/header"
)

func TestParseConfigMapURI(t *testing.T) {
	tests := []struct {
		name          string
		uri           string
		wantNamespace string
		wantName      string
		wantErr       bool
	}{
		{name: "valid", uri: "cm://recipes/corpus", wantNamespace: "recipes", wantName: "corpus"},
		{name: "spaces", uri: "cm://recipes / corpus ", wantNamespace: "recipes", wantName: "corpus"},
		{name: "missing scheme", uri: "recipes/corpus", wantErr: true},
		{name: "wrong scheme", uri: "http://recipes/corpus", wantErr: true},
		{name: "missing name", uri: "cm://recipes/", wantErr: true},
		{name: "missing namespace", uri: "cm:///corpus", wantErr: true},
		{name: "missing separator", uri: "cm://recipes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, name, err := parseConfigMapURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseConfigMapURI(%q) expected error", tt.uri)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseConfigMapURI(%q) error = %v", tt.uri, err)
			}
			if ns != tt.wantNamespace || name != tt.wantName {
				t.Errorf("got %s/%s, want %s/%s", ns, name, tt.wantNamespace, tt.wantName)
			}
		})
	}
}

func TestConfigMapWriter_Serialize(t *testing.T) {
	k8s := fake.NewClientset()
	w := NewConfigMapWriter("recipes", "corpus", FormatJSON,
		WithConfigMapClient(k8s), WithConfigMapVersion("v0.1.0"))

	items := []testItem{{Name: "Оливье", Value: 1}}
	require.NoError(t, w.Serialize(context.Background(), items))
	require.NoError(t, w.Close())

	cm, err := k8s.CoreV1().ConfigMaps("recipes").Get(context.Background(), "corpus", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "json", cm.Data["format"])
	assert.Contains(t, cm.Data["recipes.json"], "Оливье")
	assert.NotEmpty(t, cm.Data["timestamp"])
	assert.Equal(t, "recipegen", cm.Labels["app.kubernetes.io/name"])
	assert.Equal(t, "corpus", cm.Labels["app.kubernetes.io/component"])
	assert.Equal(t, "v0.1.0", cm.Labels["app.kubernetes.io/version"])

	back, err := fromConfigMap[[]testItem](context.Background(), k8s, "recipes", "corpus")
	require.NoError(t, err)
	assert.Equal(t, items, *back)
}

func TestConfigMapWriter_HeaderedDocument(t *testing.T) {
	type doc struct {
		header.Header `json:",inline" yaml:",inline"`

		Items []testItem `json:"items" yaml:"items"`
	}
	d := &doc{Items: []testItem{{Name: "x", Value: 1}}}
	d.Init(header.KindValidationResult, header.APIVersion, "v9.9.9")

	k8s := fake.NewClientset()
	w := NewConfigMapWriter("recipes", "report", FormatYAML, WithConfigMapClient(k8s))
	require.NoError(t, w.Serialize(context.Background(), d))

	cm, err := k8s.CoreV1().ConfigMaps("recipes").Get(context.Background(), "report", metav1.GetOptions{})
	require.NoError(t, err)
	assert.Equal(t, "validationresult", cm.Labels["app.kubernetes.io/component"])
	assert.Equal(t, "v9.9.9", cm.Labels["app.kubernetes.io/version"])
	assert.Equal(t, d.Metadata["timestamp"], cm.Data["timestamp"])
	assert.Contains(t, cm.Data["recipes.yaml"], "kind: ValidationResult")
}

func TestFromConfigMap(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]string
		want    []testItem
		errCode apperrors.ErrorCode
	}{
		{
			name: "format key",
			data: map[string]string{"format": "yaml", "recipes.yaml": "- name: a\n  value: 1\n"},
			want: []testItem{{Name: "a", Value: 1}},
		},
		{
			name: "no format key falls back to any known document",
			data: map[string]string{"recipes.yaml": "- name: b\n  value: 2\n"},
			want: []testItem{{Name: "b", Value: 2}},
		},
		{
			name:    "no document",
			data:    map[string]string{"format": "json"},
			errCode: apperrors.ErrCodeNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k8s := fake.NewClientset(&corev1.ConfigMap{
				ObjectMeta: metav1.ObjectMeta{Name: "corpus", Namespace: "recipes"},
				Data:       tt.data,
			})
			got, err := fromConfigMap[[]testItem](context.Background(), k8s, "recipes", "corpus")
			if tt.errCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsCode(err, tt.errCode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}

	t.Run("missing configmap", func(t *testing.T) {
		_, err := fromConfigMap[[]testItem](context.Background(), fake.NewClientset(), "recipes", "nope")
		require.Error(t, err)
	})
}

func TestNewConfigMapWriter_UnknownFormat(t *testing.T) {
	w := NewConfigMapWriter("ns", "name", "xml")
	assert.Equal(t, FormatJSON, w.format)
}
