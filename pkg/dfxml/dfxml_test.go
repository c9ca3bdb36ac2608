package dfxml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ostafen/imgsniff/pkg/dfxml"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadReport(t *testing.T) {
	var buf bytes.Buffer

	w := dfxml.NewWriter(&buf)
	require.NoError(t, w.WriteHeader(dfxml.DFXMLHeader{
		XmlOutput: dfxml.XmlOutputVersion,
		Metadata:  dfxml.DefaultMetadata,
		Creator: dfxml.Creator{
			Package: "imgsniff",
			Version: "test",
		},
		Source: dfxml.Source{Paths: []string{"/srv/uploads"}},
	}))

	objs := []dfxml.FileObject{
		{
			Filename: "/srv/uploads/a.png",
			FileSize: 1024,
			Format:   "PNG",
			MIMEType: "image/png",
			Ext:      "png",
			HashDigests: []dfxml.HashDigest{
				{Type: "xxh64", Value: "ef46db3751d8e999"},
			},
		},
		{
			Filename: "/srv/uploads/empty",
			Error:    "short read",
		},
	}
	for _, obj := range objs {
		require.NoError(t, w.WriteFileObject(obj))
	}
	require.NoError(t, w.Close())

	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, out, `<dfxml xmloutputversion="1.0">`)
	require.Contains(t, out, `<image_filename>/srv/uploads</image_filename>`)
	require.Contains(t, out, `<libmagic>PNG</libmagic>`)
	require.Contains(t, out, `<hashdigest type="xxh64">ef46db3751d8e999</hashdigest>`)
	require.Equal(t, 1, strings.Count(out, "<dfxml "))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "</dfxml>"))

	got, err := dfxml.ReadFileObjects(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "/srv/uploads/a.png", got[0].Filename)
	require.Equal(t, uint64(1024), got[0].FileSize)
	require.Equal(t, "PNG", got[0].Format)
	require.Equal(t, objs[0].HashDigests, got[0].HashDigests)

	require.Equal(t, "short read", got[1].Error)
	require.Empty(t, got[1].Format)
}

func TestReadFileObjectsInvalid(t *testing.T) {
	_, err := dfxml.ReadFileObjects(strings.NewReader("<dfxml><fileobject><filesize>abc</filesize></fileobject></dfxml>"))
	require.Error(t, err)
}
