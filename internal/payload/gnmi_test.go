// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gpb "github.com/openconfig/gnmi/proto/gnmi"
	"google.golang.org/protobuf/proto"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/ironcore-dev/ietf-interfaces/api/ietf"
)

var _ = Describe("SetRequest", func() {
	eth1Path := &gpb.Path{
		Origin: "ietf-interfaces",
		Elem: []*gpb.PathElem{
			{Name: "interfaces"},
			{Name: "interface", Key: map[string]string{"name": "eth1"}},
		},
	}

	It("should render an update per interface", func() {
		r, err := SetRequest(newModel(newInterface("eth1", 1), newInterface("eth2", 2)), WithLogger(logf.Log))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Replace).To(BeEmpty())
		Expect(r.Delete).To(BeEmpty())
		Expect(r.Update).To(HaveLen(2))

		Expect(proto.Equal(r.Update[0].Path, eth1Path)).To(BeTrue(), "got path %v", r.Update[0].Path)
		Expect(string(r.Update[0].Val.GetJsonIetfVal())).To(Equal(eth1Body))
		Expect(r.Update[1].Path.GetElem()[1].GetKey()).To(HaveKeyWithValue("name", "eth2"))
	})

	It("should replace interfaces", func() {
		r, err := SetRequest(newModel(newInterface("eth1", 1)), WithReplace())
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Update).To(BeEmpty())
		Expect(r.Replace).To(HaveLen(1))
		Expect(proto.Equal(r.Replace[0].Path, eth1Path)).To(BeTrue(), "got path %v", r.Replace[0].Path)
	})

	It("should support JSON encoding", func() {
		r, err := SetRequest(newModel(newInterface("eth1", 1)), WithEncoding(gpb.Encoding_JSON))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Update).To(HaveLen(1))
		Expect(string(r.Update[0].Val.GetJsonVal())).To(Equal(eth1Body))
		Expect(r.Update[0].Val.GetJsonIetfVal()).To(BeNil())
	})

	It("should emit defaults unless compact", func() {
		r, err := SetRequest(newModel(newInterface("eth1", 1)), WithCompact(false))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Update).To(HaveLen(1))
		Expect(string(r.Update[0].Val.GetJsonIetfVal())).To(ContainSubstring(`"ietf-interfaces:higher-layer-if":[]`))
	})

	It("should reject unsupported encodings", func() {
		_, err := SetRequest(newModel(newInterface("eth1", 1)), WithEncoding(gpb.Encoding_PROTO))
		Expect(err).To(MatchError(ContainSubstring("unsupported encoding")))
	})

	It("should render an empty request for an empty model", func() {
		r, err := SetRequest(&ietf.Model{})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Update).To(BeEmpty())
		Expect(r.Replace).To(BeEmpty())
	})

	It("should reject the state tree", func() {
		_, err := SetRequest(&ietf.Model{InterfacesState: &ietf.InterfacesState{}})
		Expect(err).To(MatchError(ErrReadOnly))
	})

	It("should reject an invalid model", func() {
		_, err := SetRequest(newModel(newInterface("eth1", 1), newInterface("eth1", 2)))
		Expect(err).To(MatchError(ietf.ErrInvalid))

		var verr *ietf.ValidationError
		Expect(err).To(BeAssignableToTypeOf(verr))
		Expect(err.(*ietf.ValidationError).Paths()).To(ConsistOf("interfaces.interface[1].name"))
	})
})
