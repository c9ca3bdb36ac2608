package identify

import (
	"io"

	"github.com/ostafen/imgsniff/internal/env"
	"github.com/ostafen/imgsniff/pkg/dfxml"
)

const DigestType = "xxh64"

// WriteReport writes results as a DFXML document.
func WriteReport(w io.Writer, paths []string, results []Result) error {
	rw := dfxml.NewWriter(w)

	err := rw.WriteHeader(dfxml.DFXMLHeader{
		XmlOutput: dfxml.XmlOutputVersion,
		Metadata:  dfxml.DefaultMetadata,
		Creator: dfxml.Creator{
			Package:              env.AppName,
			Version:              env.Version,
			ExecutionEnvironment: dfxml.GetExecEnv(),
		},
		Source: dfxml.Source{Paths: paths},
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		if err := rw.WriteFileObject(fileObject(r)); err != nil {
			return err
		}
	}
	return rw.Close()
}

func fileObject(r Result) dfxml.FileObject {
	obj := dfxml.FileObject{
		Filename: r.Path,
		FileSize: uint64(max(r.Size, 0)),
	}

	if r.Err != nil {
		obj.Error = r.Err.Error()
	} else {
		obj.Format = r.Format.String()
		obj.MIMEType = r.Format.MIMEType()
		obj.Ext = r.Format.Ext()
	}

	if r.Digest != "" {
		obj.HashDigests = []dfxml.HashDigest{{Type: DigestType, Value: r.Digest}}
	}
	return obj
}
