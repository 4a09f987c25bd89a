package cli

// examples is appended to the top-level help text.
const examples = `Examples:

  # records as TSV
  pfa records -f fasta genome.fa

  # FASTQ reads re-encoded as JSON lines, read from stdin
  zcat reads.fq.gz | pfa records -f fastq -o jsonl -

  # FASTA alignment to ungapped FASTQ with a fixed quality
  pfa records -f fasta --remove-gaps -o fastq --qual-char '#' aln.fa

  # per-file summary of every FASTA in a directory, 4 workers
  pfa stats -f fasta -t 4 'assemblies/*.fa'
`
