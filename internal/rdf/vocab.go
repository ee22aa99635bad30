package rdf

// Namespace IRIs of the W3C vocabularies queries reference most.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
)

// RDF and RDFS terms.
const (
	RDFType      = RDFNamespace + "type"
	RDFSLabel    = RDFSNamespace + "label"
	RDFSComment  = RDFSNamespace + "comment"
	RDFSSubClass = RDFSNamespace + "subClassOf"
	RDFSResource = RDFSNamespace + "Resource"
	OWLSameAs    = OWLNamespace + "sameAs"
	OWLThing     = OWLNamespace + "Thing"
)

// XSD datatypes used for typed literals.
const (
	XSDString   = XSDNamespace + "string"
	XSDBoolean  = XSDNamespace + "boolean"
	XSDInteger  = XSDNamespace + "integer"
	XSDDecimal  = XSDNamespace + "decimal"
	XSDDouble   = XSDNamespace + "double"
	XSDDateTime = XSDNamespace + "dateTime"
)

// WellKnownPrefixes maps conventional aliases to their namespaces.
var WellKnownPrefixes = map[string]string{
	"rdf":  RDFNamespace,
	"rdfs": RDFSNamespace,
	"xsd":  XSDNamespace,
	"owl":  OWLNamespace,
}
