// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client builds the Kubernetes client used for ConfigMap corpus
// output and input (cm://namespace/name targets).
//
// GetKubeClient returns a process-wide client created on first use with
// automatic configuration discovery:
//
//  1. the KUBECONFIG environment variable
//  2. ~/.kube/config when it exists
//  3. the in-cluster service account
//
// BuildKubeClient and GetKubeClientWithConfig bypass the cache and load an
// explicit kubeconfig, which is what the --kubeconfig flag uses.
//
// Callers that accept a client take Interface so tests can substitute
// k8s.io/client-go/kubernetes/fake.
package client
