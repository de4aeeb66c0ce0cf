package odt

// Office styles for GOST R 2.105-2019 text documents: FreeSerif 14pt,
// 1.5 line spacing, 1.2cm first-line indent, A4 page with 3.0/1.5/2.0/1.5cm
// margins.
const stylesXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
 xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
 xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
 xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
 xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
 office:version="1.2">
 <office:font-face-decls>
  <style:font-face style:name="FreeSerif" svg:font-family="FreeSerif, 'Times New Roman', serif"/>
 </office:font-face-decls>
 <office:styles>
  <style:default-style style:family="paragraph">
   <style:paragraph-properties fo:text-align="justify" style:line-height-at-least="0.6cm"/>
   <style:text-properties style:font-name="FreeSerif" fo:font-size="14pt" fo:language="ru" fo:country="RU"/>
  </style:default-style>
  <style:style style:name="Standard" style:family="paragraph" style:class="text"/>
 </office:styles>
 <office:automatic-styles>
  <style:page-layout style:name="pm1">
   <style:page-layout-properties fo:page-width="21.0cm" fo:page-height="29.7cm"
    style:print-orientation="portrait"
    fo:margin-top="1.5cm" fo:margin-bottom="1.5cm"
    fo:margin-left="3.0cm" fo:margin-right="2.0cm"/>
  </style:page-layout>
 </office:automatic-styles>
 <office:master-styles>
  <style:master-page style:name="Standard" style:page-layout-name="pm1"/>
 </office:master-styles>
</office:document-styles>
`

// automaticStyles is embedded in content.xml and carries every paragraph,
// table and frame style the instruction stream can reference.
const automaticStyles = `<office:automatic-styles>
  <style:style style:name="Heading_20_1" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-top="0.42cm" fo:margin-bottom="0.21cm" fo:text-align="center" fo:keep-with-next="always"/>
   <style:text-properties fo:font-size="14pt" fo:font-weight="bold"/>
  </style:style>
  <style:style style:name="Heading_20_2" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-top="0.42cm" fo:margin-bottom="0.21cm" fo:margin-left="0cm" fo:text-indent="1.2cm" fo:text-align="left" fo:keep-with-next="always"/>
   <style:text-properties fo:font-size="14pt" fo:font-weight="bold"/>
  </style:style>
  <style:style style:name="Clause" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-indent="1.2cm" fo:text-align="justify"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="Subclause" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-indent="1.2cm" fo:text-align="justify"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="Normal" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-indent="1.2cm" fo:text-align="justify"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="TableTitle" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-top="0.21cm" fo:margin-bottom="0.1cm" fo:text-align="left" fo:keep-with-next="always"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="TableHeader" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-align="center"/>
   <style:text-properties fo:font-size="12pt" fo:font-weight="bold"/>
  </style:style>
  <style:style style:name="TableCell" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-align="left"/>
   <style:text-properties fo:font-size="12pt"/>
  </style:style>
  <style:style style:name="TOCTitle" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-top="0.42cm" fo:margin-bottom="0.42cm" fo:text-align="center"/>
   <style:text-properties fo:font-size="14pt" fo:font-weight="bold"/>
  </style:style>
  <style:style style:name="TOC" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-align="left"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="TOC2" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-left="1.0cm" fo:text-align="left"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="PageBreak" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:break-before="page"/>
  </style:style>
  <style:style style:name="ImageCaptionCenter" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-top="0.1cm" fo:margin-bottom="0.21cm" fo:text-align="center" fo:text-indent="0cm"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="GraphicsCenter" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-align="center" fo:text-indent="0cm" fo:keep-with-next="always"/>
  </style:style>
  <style:style style:name="TitlePage" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-align="center" fo:text-indent="0cm"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="TitleCompany" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-align="center" fo:text-indent="0cm"/>
   <style:text-properties fo:font-size="14pt" fo:font-weight="bold"/>
  </style:style>
  <style:style style:name="TitleRight" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-left="9.0cm" fo:text-align="left" fo:text-indent="0cm"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="TitleLeft" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:text-align="left" fo:text-indent="0cm"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="TitleBottom" style:family="paragraph" style:parent-style-name="Standard">
   <style:paragraph-properties fo:margin-top="1.0cm" fo:text-align="center" fo:text-indent="0cm"/>
   <style:text-properties fo:font-size="14pt"/>
  </style:style>
  <style:style style:name="DocTable" style:family="table">
   <style:table-properties style:width="17.0cm" table:align="margins" fo:margin-top="0.1cm" fo:margin-bottom="0.21cm"/>
  </style:style>
  <style:style style:name="DocTableColumn" style:family="table-column">
   <style:table-column-properties style:use-optimal-column-width="true"/>
  </style:style>
  <style:style style:name="DocTableCell" style:family="table-cell">
   <style:table-cell-properties fo:border="0.5pt solid #000000" fo:padding="0.1cm"/>
  </style:style>
  <style:style style:name="DocFrame" style:family="graphic">
   <style:graphic-properties style:horizontal-pos="center" style:horizontal-rel="paragraph" style:wrap="none"/>
  </style:style>
 </office:automatic-styles>`

const settingsXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-settings xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" office:version="1.2">
 <office:settings/>
</office:document-settings>
`

// styleNameFor maps instruction stream style names onto ODF style names.
func styleNameFor(style string) string {
	switch style {
	case "Heading1":
		return "Heading_20_1"
	case "Heading2":
		return "Heading_20_2"
	case "":
		return "Normal"
	default:
		return style
	}
}
