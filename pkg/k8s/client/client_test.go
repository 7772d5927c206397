package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"k8s.io/client-go/rest"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

func resetSingleton() {
	clientOnce = sync.Once{}
	cachedClient = nil
	cachedConfig = nil
	clientErr = nil
}

func TestBuildKubeClient_InvalidPaths(t *testing.T) {
	tests := []struct {
		name          string
		kubeconfigArg string
		kubeconfigEnv string
	}{
		{name: "explicit invalid path", kubeconfigArg: "/nonexistent/path/to/kubeconfig"},
		{name: "env var with invalid path", kubeconfigEnv: "/nonexistent/env/kubeconfig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KUBECONFIG", tt.kubeconfigEnv)

			_, _, err := BuildKubeClient(tt.kubeconfigArg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "failed to build kube config") {
				t.Errorf("error = %v, want it to mention kube config", err)
			}
		})
	}
}

func TestBuildKubeClient_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := os.WriteFile(path, []byte("invalid yaml content"), 0o600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}
	if _, _, err := BuildKubeClient(path); err == nil {
		t.Error("expected error for malformed kubeconfig")
	}
}

func TestBuildKubeClient_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubeconfig")
	data := `apiVersion: v1
kind: Config
clusters:
- name: test
  cluster:
    server: https://127.0.0.1:6443
contexts:
- name: test
  context:
    cluster: test
    user: test
current-context: test
users:
- name: test
  user:
    token: abc
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}

	cs, cfg, err := BuildKubeClient(path)
	if err != nil {
		t.Fatalf("BuildKubeClient() error = %v", err)
	}
	if cs == nil || cfg == nil {
		t.Fatal("expected client and config")
	}
	if cfg.Host != "https://127.0.0.1:6443" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if got := AuthMethod(cfg); got != "bearer-token" {
		t.Errorf("AuthMethod() = %q, want bearer-token", got)
	}
}

func TestResolveKubeconfig(t *testing.T) {
	t.Setenv("KUBECONFIG", "/from/env")
	if got := resolveKubeconfig("/explicit"); got != "/explicit" {
		t.Errorf("explicit path should win, got %q", got)
	}
	if got := resolveKubeconfig(""); got != "/from/env" {
		t.Errorf("env path should be used, got %q", got)
	}
}

func TestGetKubeClient_Singleton(t *testing.T) {
	resetSingleton()
	defer resetSingleton()

	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	c1, cfg1, err1 := GetKubeClient()
	c2, cfg2, err2 := GetKubeClient()

	//nolint:errorlint // the cached error instance is returned
	if err1 != err2 {
		t.Errorf("expected the same error instance: %v vs %v", err1, err2)
	}
	if err1 == nil {
		t.Fatal("expected error for nonexistent kubeconfig")
	}
	if c1 != nil || c2 != nil || cfg1 != nil || cfg2 != nil {
		t.Error("failed initialization must not return a client")
	}
}

func TestGetKubeClient_Concurrent(t *testing.T) {
	resetSingleton()
	defer resetSingleton()

	t.Setenv("KUBECONFIG", "/nonexistent/kubeconfig")

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = GetKubeClient()
		}()
	}
	wg.Wait()

	for i := 1; i < len(errs); i++ {
		//nolint:errorlint // the cached error instance is returned
		if errs[i] != errs[0] {
			t.Errorf("goroutine %d got a different error", i)
		}
	}
}

func TestAuthMethod(t *testing.T) {
	tests := []struct {
		name   string
		config *rest.Config
		want   string
	}{
		{"nil", nil, "unknown"},
		{"auth provider", &rest.Config{AuthProvider: &clientcmdapi.AuthProviderConfig{Name: "oidc"}}, "oidc"},
		{"exec", &rest.Config{ExecProvider: &clientcmdapi.ExecConfig{Command: "aws"}}, "exec"},
		{"token", &rest.Config{BearerToken: "t"}, "bearer-token"},
		{"cert", &rest.Config{TLSClientConfig: rest.TLSClientConfig{CertData: []byte("c")}}, "cert"},
		{"default", &rest.Config{}, "default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthMethod(tt.config); got != tt.want {
				t.Errorf("AuthMethod() = %q, want %q", got, tt.want)
			}
		})
	}
}
