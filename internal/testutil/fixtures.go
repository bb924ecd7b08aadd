package testutil

// Captured console output used across parser and manager tests. The
// shapes (separator lines, tab-padded columns, trailer lines) mirror
// what fs_cli actually prints.

// SofiaStatusOutput is a `sofia status` table with two profiles, one
// gateway and one alias.
const SofiaStatusOutput = "" +
	"                     Name\t   Type\t                                      Data\tState\n" +
	"=================================================================================================\n" +
	"                 external\tprofile\t          sip:mod_sofia@198.51.100.5:5080\tRUNNING (0)\n" +
	"                 internal\tprofile\t          sip:mod_sofia@198.51.100.5:5060\tRUNNING (0)\n" +
	"    external::example.com\tgateway\t                   sip:gw@sip.example.com\tNOREG\n" +
	"              example.com\talias\t                                  internal\tALIASED\n" +
	"=================================================================================================\n" +
	"2 profiles 1 alias\n"

// ListUsersOutput is a `list_users` listing with three users across two
// domains, including the blank line and +OK trailer fs_cli appends.
const ListUsersOutput = "" +
	"userid|context|domain|group|contact|callgroup|effective_caller_id_name|effective_caller_id_number\n" +
	"1001|default|pbx.example.com|default|error/user_not_registered|techsupport|Extension 1001|1001\n" +
	"1002|default|pbx.example.com|default|error/user_not_registered|techsupport|Extension 1002|1002\n" +
	"2001|public|branch.example.net|sales|error/user_not_registered||Extension 2001|2001\n" +
	"\n" +
	"+OK\n"

// SingleFileConfig is a minimal aggregate freeswitch.xml containing the
// sofia configuration section, i.e. already squashed to one document.
const SingleFileConfig = `<document type="freeswitch/xml">
  <section name="configuration">
    <configuration name="sofia.conf">
      <profiles>
        <profile name="internal"/>
      </profiles>
    </configuration>
  </section>
  <section name="directory">
    <domain name="pbx.example.com"/>
  </section>
</document>
`

// IncludeStyleConfig is a stock multi-file freeswitch.xml root that pulls
// its sections in through X-PRE-PROCESS includes; no sofia section inline.
const IncludeStyleConfig = `<document type="freeswitch/xml">
  <section name="configuration" description="Various Configuration">
    <X-PRE-PROCESS cmd="include" data="autoload_configs/*.xml"/>
  </section>
  <section name="dialplan" description="Regex/XML Dialplan">
    <X-PRE-PROCESS cmd="include" data="dialplan/*.xml"/>
  </section>
</document>
`
