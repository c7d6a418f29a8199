// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"context"
	"io"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/ironcore-dev/ietf-interfaces/api/ietf"
)

var _ = Describe("RESTCONF", func() {
	It("should render the interfaces container", func() {
		reqs, err := RESTCONF(newModel(newInterface("eth1", 1)), http.MethodPatch, WithLogger(logf.Log))
		Expect(err).NotTo(HaveOccurred())
		Expect(reqs).To(HaveLen(1))
		Expect(reqs[0].Method).To(Equal(http.MethodPatch))
		Expect(reqs[0].Path).To(Equal("/restconf/data/ietf-interfaces:interfaces"))
		Expect(reqs[0].ContentType).To(Equal("application/yang-data+json"))
		Expect(string(reqs[0].Body)).To(Equal(`{"ietf-interfaces:interfaces":{"ietf-interfaces:interface":[` + eth1Body + `]}}`))
		Expect(reqs[0].String()).To(Equal("PATCH /restconf/data/ietf-interfaces:interfaces"))
	})

	It("should target the datastore on POST", func() {
		reqs, err := RESTCONF(newModel(newInterface("eth1", 1)), http.MethodPost)
		Expect(err).NotTo(HaveOccurred())
		Expect(reqs).To(HaveLen(1))
		Expect(reqs[0].Path).To(Equal("/restconf/data"))
	})

	It("should emit defaults unless compact", func() {
		reqs, err := RESTCONF(newModel(newInterface("eth1", 1)), http.MethodPut, WithCompact(false))
		Expect(err).NotTo(HaveOccurred())
		Expect(reqs).To(HaveLen(1))
		Expect(string(reqs[0].Body)).To(ContainSubstring(`"ietf-interfaces:enabled":true`))
	})

	It("should render nothing for an empty model", func() {
		reqs, err := RESTCONF(&ietf.Model{}, http.MethodPatch)
		Expect(err).NotTo(HaveOccurred())
		Expect(reqs).To(BeEmpty())
	})

	It("should reject the state tree", func() {
		m := newModel(newInterface("eth1", 1))
		m.InterfacesState = &ietf.InterfacesState{}
		_, err := RESTCONF(m, http.MethodPatch)
		Expect(err).To(MatchError(ErrReadOnly))
		_, err = InterfaceRequests(m, http.MethodPatch)
		Expect(err).To(MatchError(ErrReadOnly))
	})

	It("should reject unsupported methods", func() {
		_, err := RESTCONF(newModel(newInterface("eth1", 1)), http.MethodGet)
		Expect(err).To(MatchError(ContainSubstring(`unsupported method "GET"`)))
	})

	It("should reject a nil model", func() {
		_, err := RESTCONF(nil, http.MethodPatch)
		Expect(err).To(HaveOccurred())
	})

	It("should reject an invalid model", func() {
		_, err := RESTCONF(newModel(newInterface("eth1", 0)), http.MethodPatch)
		Expect(err).To(MatchError(ietf.ErrInvalid))
		_, err = InterfaceRequests(newModel(newInterface("eth1", 0)), http.MethodPatch)
		Expect(err).To(MatchError(ietf.ErrInvalid))
	})

	Describe("InterfaceRequests", func() {
		It("should render one request per interface", func() {
			reqs, err := InterfaceRequests(newModel(newInterface("eth1", 1), newInterface("Ethernet1/1", 2)), http.MethodPut, WithLogger(logf.Log))
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(2))
			Expect(reqs[0].Method).To(Equal(http.MethodPut))
			Expect(reqs[0].Path).To(Equal("/restconf/data/ietf-interfaces:interfaces/interface=eth1"))
			Expect(string(reqs[0].Body)).To(Equal(`{"ietf-interfaces:interface":[` + eth1Body + `]}`))
			Expect(reqs[1].Path).To(Equal("/restconf/data/ietf-interfaces:interfaces/interface=Ethernet1%2F1"))
		})

		It("should percent-encode reserved characters of the key", func() {
			reqs, err := InterfaceRequests(newModel(newInterface("lo 0,a", 1)), http.MethodPatch)
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(1))
			Expect(reqs[0].Path).To(Equal("/restconf/data/ietf-interfaces:interfaces/interface=lo%200%2Ca"))
		})

		It("should target the container on POST", func() {
			reqs, err := InterfaceRequests(newModel(newInterface("eth1", 1)), http.MethodPost)
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(1))
			Expect(reqs[0].Path).To(Equal("/restconf/data/ietf-interfaces:interfaces"))
		})
	})

	Describe("HTTPRequest", func() {
		It("should build an http request", func() {
			reqs, err := InterfaceRequests(newModel(newInterface("eth1", 1)), http.MethodPatch)
			Expect(err).NotTo(HaveOccurred())
			Expect(reqs).To(HaveLen(1))

			req, err := reqs[0].HTTPRequest(context.Background(), "https://192.0.2.10/")
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Method).To(Equal(http.MethodPatch))
			Expect(req.URL.String()).To(Equal("https://192.0.2.10/restconf/data/ietf-interfaces:interfaces/interface=eth1"))
			Expect(req.Header.Get("Content-Type")).To(Equal(MediaType))
			Expect(req.Header.Get("Accept")).To(Equal(MediaType))

			body, err := io.ReadAll(req.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(Equal(reqs[0].Body))
		})

		It("should fail on a malformed base url", func() {
			r := &Request{Method: http.MethodPatch, Path: "/restconf/data"}
			_, err := r.HTTPRequest(context.Background(), "://")
			Expect(err).To(HaveOccurred())
		})
	})
})
