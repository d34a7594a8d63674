// Package kube wraps the kubectl CLI: pod listings, namespace discovery,
// and kubeconfig context inspection and switching. Everything goes through
// the subprocess boundary; svcctl deliberately does not talk to the API
// server itself, so whatever kubectl is configured to do (auth plugins,
// proxies) applies unchanged.
package kube
