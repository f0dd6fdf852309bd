package appcore

import (
	"io"

	"vpcr-core/engine"
	"vpcr-core/junction"
	"vpcr/internal/output"
	"vpcr/internal/siteoutput"
	"vpcr/internal/writers"
)

// ---------------- Product writer ----------------

type ProductWriterFactory struct {
	Format   string
	Header   bool
	Products bool
}

func NewProductWriterFactory(format string, header, products bool) ProductWriterFactory {
	return ProductWriterFactory{Format: format, Header: header, Products: products}
}

func (w ProductWriterFactory) NeedSeq() bool {
	return w.Products || w.Format == output.FormatFASTA
}

func (w ProductWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Product, <-chan error) {
	return writers.StartProductWriter(out, w.Format, writers.Options{Header: w.Header, Products: w.NeedSeq()}, bufSize)
}

// ---------------- Site writer ----------------

type SiteWriterFactory struct {
	Format string
	Header bool
}

func NewSiteWriterFactory(format string, header bool) SiteWriterFactory {
	return SiteWriterFactory{Format: format, Header: header}
}

func (w SiteWriterFactory) NeedSeq() bool { return false } // Site.Seq comes from the matcher

func (w SiteWriterFactory) Start(out io.Writer, bufSize int) (chan<- siteoutput.Hit, <-chan error) {
	return writers.StartSiteWriter(out, w.Format, writers.Options{Header: w.Header}, bufSize)
}

// ---------------- Junction writer ----------------

type JunctionWriterFactory struct {
	Format string
	Header bool
}

func NewJunctionWriterFactory(format string, header bool) JunctionWriterFactory {
	return JunctionWriterFactory{Format: format, Header: header}
}

func (w JunctionWriterFactory) NeedSeq() bool { return false }

func (w JunctionWriterFactory) Start(out io.Writer, bufSize int) (chan<- junction.Annotation, <-chan error) {
	return writers.StartJunctionWriter(out, w.Format, writers.Options{Header: w.Header}, bufSize)
}
